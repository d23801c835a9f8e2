package catalog

// The bundled catalog gives the UI something to render before any network
// access completes and plugs gaps the remote source leaves. Ids here are
// placeholders; the remote source's ids win whenever a name matches.

var seedProducts = []Product{
	{ID: 1, Nombre: "1 Kilo", Precio: 18000, MaxGustos: 4, EsPorPeso: true},
	{ID: 2, Nombre: "1/2 Kilo", Precio: 10000, MaxGustos: 3, EsPorPeso: true},
	{ID: 3, Nombre: "1/4 Kilo", Precio: 6000, MaxGustos: 2, EsPorPeso: true},
	{ID: 4, Nombre: "Casata", Precio: 3500, MaxGustos: 0, EsPorPeso: false},
	{ID: 5, Nombre: "Almendrado", Precio: 3000, MaxGustos: 0, EsPorPeso: false},
	{ID: 6, Nombre: "Bombon Suizo", Precio: 3000, MaxGustos: 0, EsPorPeso: false},
}

var seedFlavors = []Flavor{
	{ID: 101, Nombre: "Chocolate", Categoria: "Chocolates", HayStock: true},
	{ID: 102, Nombre: "Chocolate con Almendras", Descripcion: "Clásico chocolate con almendras tostadas.", Categoria: "Chocolates", HayStock: true},
	{ID: 103, Nombre: "Chocolate Blanco", Descripcion: "Cremoso chocolate blanco.", Categoria: "Chocolates", HayStock: true},
	{ID: 104, Nombre: "Chocolate Especial", Descripcion: "Con dulce de leche natural y trozos de chocolate blanco", Categoria: "Chocolates", HayStock: true},
	{ID: 105, Nombre: "Chocolate Dubai", Descripcion: "Clásico chocolate con variegato de pistacho crunchy", Categoria: "Chocolates", HayStock: true},
	{ID: 201, Nombre: "Dulce de Leche Granizado", Descripcion: "Con trozos de chocolate amargo.", Categoria: "Dulces", HayStock: true},
	{ID: 202, Nombre: "Dulce de Leche", Categoria: "Dulces", HayStock: true},
	{ID: 301, Nombre: "Sambayón", Categoria: "Cremas", HayStock: true},
	{ID: 302, Nombre: "Tramontana", Descripcion: "Crema americana con dulce de leche y bolitas de chocolate.", Categoria: "Cremas", HayStock: true},
	{ID: 303, Nombre: "Vainilla", Categoria: "Cremas", HayStock: true},
	{ID: 304, Nombre: "Granizado", Descripcion: "Americana con trozos de chocolate.", Categoria: "Cremas", HayStock: true},
	{ID: 305, Nombre: "Crema Oreo", Descripcion: "Crema americana con galletitas Oreo.", Categoria: "Cremas", HayStock: true},
	{ID: 306, Nombre: "Frutilla", Categoria: "Cremas", HayStock: true},
	{ID: 307, Nombre: "Menta Granizada", Categoria: "Cremas", HayStock: true},
	{ID: 308, Nombre: "Banana Split", Categoria: "Cremas", HayStock: true},
	{ID: 309, Nombre: "Crema Americana", Categoria: "Cremas", HayStock: true},
	{ID: 310, Nombre: "Mascarpone con Frutos Rojos", Categoria: "Cremas", HayStock: true},
	{ID: 311, Nombre: "Flan al Caramelo", Categoria: "Cremas", HayStock: true},
	{ID: 312, Nombre: "Crema de Almendras", Categoria: "Cremas", HayStock: true},
	{ID: 313, Nombre: "Pistacho", Categoria: "Cremas", HayStock: true},
	{ID: 314, Nombre: "Ferrero Rocher", Categoria: "Cremas", HayStock: true},
	{ID: 315, Nombre: "Mantecol", Categoria: "Cremas", HayStock: true},
	{ID: 401, Nombre: "Limón", Descripcion: "Jugo natural de limón.", Categoria: "Frutales", HayStock: true},
	{ID: 402, Nombre: "Frambuesa con Maracuya", Categoria: "Frutales", HayStock: true},
}

// SeedProducts returns a fresh copy of the bundled product types.
func SeedProducts() []Product {
	return cloneSlice(seedProducts)
}

// SeedFlavors returns a fresh copy of the bundled flavors.
func SeedFlavors() []Flavor {
	return cloneSlice(seedFlavors)
}
