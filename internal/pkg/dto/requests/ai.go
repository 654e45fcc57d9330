package requests

type PrescriptionImage struct {
	OwnerID  string
	FileName string
	MIMEType string
	Data     []byte
}

type AnalyzeSymptoms struct {
	Symptoms string `json:"symptoms" validate:"required,notblank"`
}

type Translate struct {
	Text           string `json:"text" validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required,language_code"`
}
