// Package datasets registers the risk report datasets with the core registry.
// Import this package to ensure all datasets are registered.
package datasets

import "github.com/JonMunkholm/riskreport/internal/core"

// sharedCategories are the categorical filters both datasets offer.
var sharedCategories = []core.Category{
	{Field: core.FieldProgram, Label: "Programa"},
	{Field: core.FieldFunding, Label: "Clasificación de becas"},
}

// identityColumns lead every dataset table.
var identityColumns = []core.Column{
	{Field: core.FieldStudentCode, Label: "Código", Kind: core.ColumnCode, Sortable: true},
	{Field: core.FieldLogin, Label: "Perfil de No Estás Solo", Kind: core.ColumnProfile},
}
