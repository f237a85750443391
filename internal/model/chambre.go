package model

// Chambre is a single room. BlocID is set once the room has been linked to a Bloc.
type Chambre struct {
	ID     int64  `gorm:"column:id_chambre;primaryKey" json:"idChambre"`
	Numero string `gorm:"column:numero_chambre" json:"numeroChambre"`
	Type   string `gorm:"column:type_chambre" json:"typeChambre"`
	BlocID *int64 `gorm:"column:bloc_id;index" json:"blocId,omitempty"`
}
