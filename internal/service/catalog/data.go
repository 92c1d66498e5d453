package catalog

var defaultNationalities = []string{
	"Mexicana",
	"Argentina",
	"Brasileña",
	"Canadiense",
	"Chilena",
	"Colombiana",
	"Costarricense",
	"Cubana",
	"Ecuatoriana",
	"Española",
	"Estadounidense",
	"Guatemalteca",
	"Hondureña",
	"Peruana",
	"Salvadoreña",
	"Uruguaya",
	"Venezolana",
	"Otra",
}

var defaultGenders = []string{
	"Femenino",
	"Masculino",
	"No binario",
	"Prefiero no decir",
}

var defaultClubs = []Club{
	{Name: "Club América", Logo: "assets/clubs/america.png"},
	{Name: "Atlas", Logo: "assets/clubs/atlas.png"},
	{Name: "Cruz Azul", Logo: "assets/clubs/cruz-azul.png"},
	{Name: "Guadalajara", Logo: "assets/clubs/guadalajara.png"},
	{Name: "León", Logo: "assets/clubs/leon.png"},
	{Name: "Monterrey", Logo: "assets/clubs/monterrey.png"},
	{Name: "Pachuca", Logo: "assets/clubs/pachuca.png"},
	{Name: "Pumas UNAM", Logo: "assets/clubs/pumas.png"},
	{Name: "Santos Laguna", Logo: "assets/clubs/santos.png"},
	{Name: "Tigres UANL", Logo: "assets/clubs/tigres.png"},
	{Name: "Toluca", Logo: "assets/clubs/toluca.png"},
}
