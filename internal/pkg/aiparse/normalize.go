package aiparse

import (
	"healthportal-service/internal/app/models"
	"healthportal-service/internal/pkg/constvars"
	"strings"
)

func NormalizePrescription(scan *models.PrescriptionScan, raw string, status ParseStatus) {
	scan.ParseStatus = string(status)
	if status == StatusFallback {
		scan.FullText = raw
	}
	if scan.Medicines == nil {
		scan.Medicines = []models.Medicine{}
	}
	if scan.Recommendations == nil {
		scan.Recommendations = []string{}
	}
}

func NormalizeSymptoms(analysis *models.SymptomAnalysis, status ParseStatus) {
	analysis.ParseStatus = string(status)
	if analysis.PossibleConditions == nil {
		analysis.PossibleConditions = []string{}
	}
	if analysis.Precautions == nil {
		analysis.Precautions = []string{}
	}
	if analysis.SuggestedMedications == nil {
		analysis.SuggestedMedications = []string{}
	}
	analysis.Severity = normalizeSeverity(analysis.Severity)
	if strings.TrimSpace(analysis.Disclaimer) == "" {
		analysis.Disclaimer = constvars.DefaultMedicalDisclaimer
	}
}

func normalizeSeverity(severity string) string {
	switch s := strings.ToLower(strings.TrimSpace(severity)); s {
	case constvars.SeverityLow, constvars.SeverityMedium, constvars.SeverityHigh, constvars.SeverityEmergency:
		return s
	}
	return constvars.SeverityLow
}
