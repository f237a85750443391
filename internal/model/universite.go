package model

// Universite represents a university.
type Universite struct {
	ID      int64  `gorm:"column:id_universite;primaryKey" json:"idUniversite"`
	Nom     string `gorm:"column:nom_universite" json:"nomUniversite"`
	Adresse string `gorm:"column:adresse" json:"adresse"`
}
