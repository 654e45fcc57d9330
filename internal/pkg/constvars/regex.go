package constvars

const (
	RegexEmail             = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD      = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM          = `^\d{2}:\d{2}$`
	RegexLanguageCode      = `^[a-z]{2}(-[A-Z]{2})?$`
	RegexFencedJSONBlock   = "(?s)```(?:json|JSON)?[ \\t]*\\r?\\n(.*?)\\r?\\n[ \\t]*```"
	RegexBraceDelimitedObj = `(?s)\{.*\}`
)
