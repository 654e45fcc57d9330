package aiparse

import (
	"testing"

	"healthportal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{
			name:  "Fenced json block",
			input: "Here you go:\n```json\n{\"severity\":\"high\"}\n```\nStay safe.",
			want:  `{"severity":"high"}`,
			found: true,
		},
		{
			name:  "Untagged fence with CRLF",
			input: "```\r\n{\"a\":1}\r\n```",
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "Bare object inside prose",
			input: `The result is {"fullText":"Rx","medicines":[]} as requested.`,
			want:  `{"fullText":"Rx","medicines":[]}`,
			found: true,
		},
		{
			name:  "Widest brace span",
			input: `{"a":{"b":1}} trailing }`,
			want:  `{"a":{"b":1}} trailing }`,
			found: true,
		},
		{
			name:  "No JSON",
			input: "I cannot read this prescription.",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSON(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("Fenced JSON returns the object unchanged", func(t *testing.T) {
		var scan models.PrescriptionScan
		raw := "```json\n{\"fullText\":\"Amoxicillin 500mg\",\"medicines\":[{\"name\":\"Amoxicillin\",\"dosage\":\"500mg\",\"instructions\":\"twice daily\"}],\"diagnosis\":\"Infection\",\"followUp\":\"1 week\",\"recommendations\":[\"rest\"]}\n```"

		status := Decode(raw, &scan)

		assert.Equal(t, StatusParsed, status)
		assert.Equal(t, "Amoxicillin 500mg", scan.FullText)
		assert.Equal(t, []models.Medicine{{Name: "Amoxicillin", Dosage: "500mg", Instructions: "twice daily"}}, scan.Medicines)
		assert.Equal(t, "Infection", scan.Diagnosis)
		assert.Equal(t, "1 week", scan.FollowUp)
		assert.Equal(t, []string{"rest"}, scan.Recommendations)
	})

	t.Run("No JSON falls back without error", func(t *testing.T) {
		analysis := models.SymptomAnalysis{Severity: "low"}

		status := Decode("Sorry, I can't help with that.", &analysis)

		assert.Equal(t, StatusFallback, status)
		assert.Equal(t, "low", analysis.Severity)
	})

	t.Run("Malformed JSON falls back", func(t *testing.T) {
		var analysis models.SymptomAnalysis

		status := Decode("```json\n{\"severity\": \"high\",}\n```", &analysis)

		assert.Equal(t, StatusFallback, status)
		assert.Empty(t, analysis.Severity)
	})

	t.Run("Type mismatch leaves no partial fields", func(t *testing.T) {
		analysis := models.SymptomAnalysis{Precautions: []string{"hydrate"}}

		status := Decode("```json\n{\"severity\":\"emergency\",\"precautions\":[\"rest\"],\"possibleConditions\":\"flu\"}\n```", &analysis)
		NormalizeSymptoms(&analysis, status)

		assert.Equal(t, StatusFallback, status)
		assert.Equal(t, "low", analysis.Severity)
		assert.Equal(t, []string{"hydrate"}, analysis.Precautions)
		assert.Equal(t, []string{}, analysis.PossibleConditions)
	})

	t.Run("Keeps defaults for absent fields", func(t *testing.T) {
		analysis := models.SymptomAnalysis{Disclaimer: "Talk to your GP."}

		status := Decode(`{"severity":"medium"}`, &analysis)

		assert.Equal(t, StatusParsed, status)
		assert.Equal(t, "medium", analysis.Severity)
		assert.Equal(t, "Talk to your GP.", analysis.Disclaimer)
	})
}

func TestNormalizeSymptoms(t *testing.T) {
	t.Run("Fills defaults", func(t *testing.T) {
		analysis := models.SymptomAnalysis{}

		NormalizeSymptoms(&analysis, StatusFallback)

		assert.Equal(t, []string{}, analysis.PossibleConditions)
		assert.Equal(t, []string{}, analysis.Precautions)
		assert.Equal(t, []string{}, analysis.SuggestedMedications)
		assert.Equal(t, "low", analysis.Severity)
		assert.Equal(t, "This is not medical advice. Please consult a healthcare professional.", analysis.Disclaimer)
		assert.Equal(t, "fallback", analysis.ParseStatus)
	})

	t.Run("Out of range severity", func(t *testing.T) {
		analysis := models.SymptomAnalysis{Severity: "critical"}
		NormalizeSymptoms(&analysis, StatusParsed)
		assert.Equal(t, "low", analysis.Severity)
	})

	t.Run("Keeps known severity and disclaimer", func(t *testing.T) {
		analysis := models.SymptomAnalysis{Severity: "Emergency", Disclaimer: "See a doctor now."}
		NormalizeSymptoms(&analysis, StatusParsed)
		assert.Equal(t, "emergency", analysis.Severity)
		assert.Equal(t, "See a doctor now.", analysis.Disclaimer)
	})
}

func TestNormalizePrescription(t *testing.T) {
	t.Run("Fallback keeps raw text", func(t *testing.T) {
		scan := models.PrescriptionScan{}

		NormalizePrescription(&scan, "Paracetamol 650 tds", StatusFallback)

		assert.Equal(t, "Paracetamol 650 tds", scan.FullText)
		assert.Equal(t, []models.Medicine{}, scan.Medicines)
		assert.Equal(t, []string{}, scan.Recommendations)
		assert.Equal(t, "fallback", scan.ParseStatus)
	})

	t.Run("Parsed keeps model text", func(t *testing.T) {
		scan := models.PrescriptionScan{FullText: "clean"}

		NormalizePrescription(&scan, "```json{...}```", StatusParsed)

		assert.Equal(t, "clean", scan.FullText)
		assert.Equal(t, "parsed", scan.ParseStatus)
	})
}
