package models

// Alimento is a food item stored in the alimentos table
type Alimento struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Nome        string `json:"nome" gorm:"column:nome;not null"`
	Tipo        string `json:"tipo" gorm:"column:tipo;not null"`
	Cor         string `json:"cor" gorm:"column:cor;not null"`
	MesColheita string `json:"mes_colheita" gorm:"column:mes_colheita;not null"`
	Categoria   string `json:"categoria" gorm:"column:categoria;not null"`
}

// TableName pins the table name; gorm would otherwise pluralize to "alimentoes"
func (Alimento) TableName() string {
	return "alimentos"
}

// CreateAlimentoRequest is the body accepted by POST /alimentos
type CreateAlimentoRequest struct {
	Nome        string `json:"nome" binding:"required"`
	Tipo        string `json:"tipo" binding:"required"`
	Cor         string `json:"cor" binding:"required"`
	MesColheita string `json:"mes_colheita" binding:"required"`
	Categoria   string `json:"categoria" binding:"required"`
}

// ToAlimento converts the request into a new, unsaved Alimento
func (r CreateAlimentoRequest) ToAlimento() *Alimento {
	return &Alimento{
		Nome:        r.Nome,
		Tipo:        r.Tipo,
		Cor:         r.Cor,
		MesColheita: r.MesColheita,
		Categoria:   r.Categoria,
	}
}
