package models

type User struct {
	ID        string `json:"id" bson:"_id"`
	Email     string `json:"email" bson:"email"`
	Name      string `json:"name" bson:"name"`
	Password  string `json:"-" bson:"password,omitempty"`
	Role      Role   `json:"role" bson:"role"`
	Picture   string `json:"picture,omitempty" bson:"picture,omitempty"`
	Provider  string `json:"provider" bson:"provider"`
	TimeModel `bson:",inline"`
}
