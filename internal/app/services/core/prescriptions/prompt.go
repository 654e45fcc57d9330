package prescriptions

const prescriptionPrompt = `You are a medical assistant analyzing a prescription image.
Extract all text from this prescription image, then analyze the extracted text to identify:
1. List of medicines with their dosages and instructions
2. Diagnosis or medical condition
3. Follow-up instructions
4. Any lifestyle or dietary recommendations

Format your response as a JSON object with the following structure:
{
  "fullText": "The complete extracted text from the image",
  "medicines": [
    { "name": "Medicine Name", "dosage": "Dosage", "instructions": "Instructions" }
  ],
  "diagnosis": "Diagnosis text",
  "followUp": "Follow-up instructions",
  "recommendations": ["Recommendation 1", "Recommendation 2"]
}`
