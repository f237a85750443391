package model

// Bloc represents a housing block and the rooms it owns.
type Bloc struct {
	ID  int64  `gorm:"column:id_bloc;primaryKey" json:"idBloc"`
	Nom string `gorm:"column:nom_bloc" json:"nomBloc"`

	// Associations
	Chambres []Chambre `gorm:"foreignKey:BlocID;references:ID" json:"chambres"`
}
