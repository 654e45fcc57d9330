package models

type SymptomAnalysis struct {
	PossibleConditions   []string `json:"possibleConditions"`
	Precautions          []string `json:"precautions"`
	SuggestedMedications []string `json:"suggestedMedications"`
	Severity             string   `json:"severity"`
	Disclaimer           string   `json:"disclaimer"`
	ParseStatus          string   `json:"parseStatus"`
}
