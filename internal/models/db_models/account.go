package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string

	Journeys []Journey `gorm:"foreignKey:UserID"`
}
