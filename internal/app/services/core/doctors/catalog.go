package doctors

import "healthportal-service/internal/app/models"

const placeholderDoctorImage = "/placeholder.svg?height=200&width=200"

// Catalog returns the doctor directory in display order.
func Catalog() []models.Doctor {
	return []models.Doctor{
		{
			ID:         "1",
			Name:       "Dr. Michael Chen",
			Speciality: "Cardiology",
			Image:      placeholderDoctorImage,
			Degree:     "MD, FACC",
			Experience: "15+ years",
			Fees:       150,
			About:      "Dr. Michael Chen is a board-certified cardiologist with over 15 years of experience in treating cardiovascular diseases. He specializes in preventive cardiology, heart failure management, and interventional procedures.",
			Address: models.Address{
				Line1: "123 Medical Center Blvd, Suite 300",
				Line2: "San Francisco, CA 94143",
			},
		},
		{
			ID:         "2",
			Name:       "Dr. Sarah Johnson",
			Speciality: "Neurology",
			Image:      placeholderDoctorImage,
			Degree:     "MD, PhD",
			Experience: "12+ years",
			Fees:       180,
			About:      "Dr. Sarah Johnson is a neurologist specializing in the diagnosis and treatment of disorders of the nervous system, including the brain, spinal cord, and peripheral nerves.",
			Address: models.Address{
				Line1: "456 Health Sciences Drive",
				Line2: "San Francisco, CA 94158",
			},
		},
		{
			ID:         "3",
			Name:       "Dr. James Wilson",
			Speciality: "Pediatrics",
			Image:      placeholderDoctorImage,
			Degree:     "MD, FAAP",
			Experience: "10+ years",
			Fees:       120,
			About:      "Dr. James Wilson is a board-certified pediatrician dedicated to providing comprehensive care for children from birth through adolescence. He focuses on preventive care and childhood development.",
			Address: models.Address{
				Line1: "789 Children's Way",
				Line2: "San Francisco, CA 94110",
			},
		},
		{
			ID:         "4",
			Name:       "Dr. Emily Rodriguez",
			Speciality: "Orthopedics",
			Image:      placeholderDoctorImage,
			Degree:     "MD, FAAOS",
			Experience: "14+ years",
			Fees:       160,
			About:      "Dr. Emily Rodriguez is an orthopedic surgeon specializing in sports medicine and joint replacement. She has extensive experience treating athletes and helping patients regain mobility.",
			Address: models.Address{
				Line1: "321 Sports Medicine Parkway",
				Line2: "San Francisco, CA 94107",
			},
		},
		{
			ID:         "5",
			Name:       "Dr. David Kim",
			Speciality: "Dermatology",
			Image:      placeholderDoctorImage,
			Degree:     "MD, FAAD",
			Experience: "8+ years",
			Fees:       140,
			About:      "Dr. David Kim is a board-certified dermatologist specializing in medical, surgical, and cosmetic dermatology. He treats conditions affecting the skin, hair, and nails.",
			Address: models.Address{
				Line1: "555 Skin Care Boulevard",
				Line2: "San Francisco, CA 94115",
			},
		},
	}
}
