package models

type Medicine struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Instructions string `json:"instructions"`
}

type PrescriptionScan struct {
	FullText        string     `json:"fullText"`
	Medicines       []Medicine `json:"medicines"`
	Diagnosis       string     `json:"diagnosis"`
	FollowUp        string     `json:"followUp"`
	Recommendations []string   `json:"recommendations"`
	ParseStatus     string     `json:"parseStatus"`
	Provider        string     `json:"provider,omitempty"`
	ImageObject     string     `json:"imageObject,omitempty"`
}
