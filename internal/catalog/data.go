package catalog

// Canonical kitchen order: proteins, fresh produce, dairy, dry goods,
// condiments and oils, drinks, then miscellaneous.
var builtinCategories = []Category{
	{ID: "carnes", NameES: "Carnes", NameFR: "Viandes"},
	{ID: "pescados", NameES: "Pescados y mariscos", NameFR: "Poissons et fruits de mer"},
	{ID: "verduras", NameES: "Verduras", NameFR: "Légumes"},
	{ID: "frutas", NameES: "Frutas", NameFR: "Fruits"},
	{ID: "lacteos", NameES: "Lácteos y huevos", NameFR: "Produits laitiers et œufs"},
	{ID: "secos", NameES: "Secos", NameFR: "Épicerie sèche"},
	{ID: "condimentos", NameES: "Condimentos y especias", NameFR: "Condiments et épices"},
	{ID: "aceites", NameES: "Aceites y vinagres", NameFR: "Huiles et vinaigres"},
	{ID: "bebidas", NameES: "Bebidas", NameFR: "Boissons"},
	{ID: MiscCategoryID, NameES: "Otros", NameFR: "Autres"},
}

var builtinProducts = []Product{
	// carnes
	{ID: "pecho-pollo", CategoryID: "carnes", NameES: "Pecho de pollo", NameFR: "Blanc de poulet", DefaultUnit: UnitKg, Aliases: []string{"pechuga de pollo", "pechuga"}},
	{ID: "pollo-entero", CategoryID: "carnes", NameES: "Pollo entero", NameFR: "Poulet entier", DefaultUnit: UnitPiece, Aliases: []string{"pollo"}},
	{ID: "muslo-pollo", CategoryID: "carnes", NameES: "Muslo de pollo", NameFR: "Cuisse de poulet", DefaultUnit: UnitKg, Aliases: []string{"muslos de pollo", "contramuslo"}},
	{ID: "carne-picada", CategoryID: "carnes", NameES: "Carne picada", NameFR: "Viande hachée", DefaultUnit: UnitKg, Aliases: []string{"carne molida"}},
	{ID: "solomillo-ternera", CategoryID: "carnes", NameES: "Solomillo de ternera", NameFR: "Filet de veau", DefaultUnit: UnitKg},
	{ID: "entrecot", CategoryID: "carnes", NameES: "Entrecot", NameFR: "Entrecôte", DefaultUnit: UnitKg},
	{ID: "costilla-cerdo", CategoryID: "carnes", NameES: "Costilla de cerdo", NameFR: "Travers de porc", DefaultUnit: UnitKg, Aliases: []string{"costillas"}},
	{ID: "lomo-cerdo", CategoryID: "carnes", NameES: "Lomo de cerdo", NameFR: "Longe de porc", DefaultUnit: UnitKg},
	{ID: "pierna-cordero", CategoryID: "carnes", NameES: "Pierna de cordero", NameFR: "Gigot d'agneau", DefaultUnit: UnitKg, Aliases: []string{"cordero"}},
	{ID: "magret-pato", CategoryID: "carnes", NameES: "Magret de pato", NameFR: "Magret de canard", DefaultUnit: UnitPiece, Aliases: []string{"pato"}},
	{ID: "bacon", CategoryID: "carnes", NameES: "Bacon", NameFR: "Lard fumé", DefaultUnit: UnitKg, Aliases: []string{"panceta", "tocino"}},
	{ID: "jamon-serrano", CategoryID: "carnes", NameES: "Jamón serrano", NameFR: "Jambon cru", DefaultUnit: UnitKg, Aliases: []string{"jamon"}},
	{ID: "chorizo", CategoryID: "carnes", NameES: "Chorizo", NameFR: "Chorizo", DefaultUnit: UnitPiece},

	// pescados
	{ID: "salmon-fresco", CategoryID: "pescados", NameES: "Salmón", NameFR: "Saumon", DefaultUnit: UnitKg, Aliases: []string{"salmon fresco"}},
	{ID: "bacalao", CategoryID: "pescados", NameES: "Bacalao", NameFR: "Cabillaud", DefaultUnit: UnitKg, Aliases: []string{"morue"}},
	{ID: "merluza", CategoryID: "pescados", NameES: "Merluza", NameFR: "Merlu", DefaultUnit: UnitKg},
	{ID: "lubina", CategoryID: "pescados", NameES: "Lubina", NameFR: "Bar", DefaultUnit: UnitKg, Aliases: []string{"robalo"}},
	{ID: "dorada", CategoryID: "pescados", NameES: "Dorada", NameFR: "Dorade", DefaultUnit: UnitKg},
	{ID: "atun", CategoryID: "pescados", NameES: "Atún", NameFR: "Thon", DefaultUnit: UnitKg},
	{ID: "gambas", CategoryID: "pescados", NameES: "Gambas", NameFR: "Crevettes", DefaultUnit: UnitKg, Aliases: []string{"camarones", "gamba"}},
	{ID: "mejillones", CategoryID: "pescados", NameES: "Mejillones", NameFR: "Moules", DefaultUnit: UnitKg},
	{ID: "calamar", CategoryID: "pescados", NameES: "Calamar", NameFR: "Calmar", DefaultUnit: UnitKg, Aliases: []string{"calamares"}},
	{ID: "pulpo", CategoryID: "pescados", NameES: "Pulpo", NameFR: "Poulpe", DefaultUnit: UnitKg},

	// verduras
	{ID: "tomate", CategoryID: "verduras", NameES: "Tomate", NameFR: "Tomate", DefaultUnit: UnitKg, Aliases: []string{"tomates", "jitomate"}},
	{ID: "cebolla", CategoryID: "verduras", NameES: "Cebolla", NameFR: "Oignon", DefaultUnit: UnitKg, Aliases: []string{"cebollas"}},
	{ID: "ajo", CategoryID: "verduras", NameES: "Ajo", NameFR: "Ail", DefaultUnit: UnitKg, Aliases: []string{"ajos"}},
	{ID: "patata", CategoryID: "verduras", NameES: "Patata", NameFR: "Pomme de terre", DefaultUnit: UnitKg, Aliases: []string{"patatas", "papa", "papas"}},
	{ID: "zanahoria", CategoryID: "verduras", NameES: "Zanahoria", NameFR: "Carotte", DefaultUnit: UnitKg, Aliases: []string{"zanahorias"}},
	{ID: "lechuga", CategoryID: "verduras", NameES: "Lechuga", NameFR: "Laitue", DefaultUnit: UnitPiece},
	{ID: "pimiento-rojo", CategoryID: "verduras", NameES: "Pimiento rojo", NameFR: "Poivron rouge", DefaultUnit: UnitKg},
	{ID: "pimiento-verde", CategoryID: "verduras", NameES: "Pimiento verde", NameFR: "Poivron vert", DefaultUnit: UnitKg},
	{ID: "calabacin", CategoryID: "verduras", NameES: "Calabacín", NameFR: "Courgette", DefaultUnit: UnitKg},
	{ID: "berenjena", CategoryID: "verduras", NameES: "Berenjena", NameFR: "Aubergine", DefaultUnit: UnitKg},
	{ID: "espinaca", CategoryID: "verduras", NameES: "Espinaca", NameFR: "Épinards", DefaultUnit: UnitKg, Aliases: []string{"espinacas"}},
	{ID: "champinon", CategoryID: "verduras", NameES: "Champiñón", NameFR: "Champignon de Paris", DefaultUnit: UnitKg, Aliases: []string{"champinones", "setas"}},
	{ID: "puerro", CategoryID: "verduras", NameES: "Puerro", NameFR: "Poireau", DefaultUnit: UnitPiece},
	{ID: "perejil", CategoryID: "verduras", NameES: "Perejil", NameFR: "Persil", DefaultUnit: UnitPiece},
	{ID: "brocoli", CategoryID: "verduras", NameES: "Brócoli", NameFR: "Brocoli", DefaultUnit: UnitKg},
	{ID: "pepino", CategoryID: "verduras", NameES: "Pepino", NameFR: "Concombre", DefaultUnit: UnitPiece},

	// frutas
	{ID: "limon", CategoryID: "frutas", NameES: "Limón", NameFR: "Citron", DefaultUnit: UnitKg, Aliases: []string{"limones"}},
	{ID: "naranja", CategoryID: "frutas", NameES: "Naranja", NameFR: "Orange", DefaultUnit: UnitKg, Aliases: []string{"naranjas"}},
	{ID: "manzana", CategoryID: "frutas", NameES: "Manzana", NameFR: "Pomme", DefaultUnit: UnitKg, Aliases: []string{"manzanas"}},
	{ID: "platano", CategoryID: "frutas", NameES: "Plátano", NameFR: "Banane", DefaultUnit: UnitKg, Aliases: []string{"banana", "platanos"}},
	{ID: "fresa", CategoryID: "frutas", NameES: "Fresa", NameFR: "Fraise", DefaultUnit: UnitKg, Aliases: []string{"fresas"}},
	{ID: "pina", CategoryID: "frutas", NameES: "Piña", NameFR: "Ananas", DefaultUnit: UnitPiece},
	{ID: "aguacate", CategoryID: "frutas", NameES: "Aguacate", NameFR: "Avocat", DefaultUnit: UnitPiece, Aliases: []string{"palta"}},
	{ID: "mango", CategoryID: "frutas", NameES: "Mango", NameFR: "Mangue", DefaultUnit: UnitPiece},
	{ID: "uva", CategoryID: "frutas", NameES: "Uva", NameFR: "Raisin", DefaultUnit: UnitKg, Aliases: []string{"uvas"}},

	// lacteos
	{ID: "leche", CategoryID: "lacteos", NameES: "Leche entera", NameFR: "Lait entier", DefaultUnit: UnitLiter, Aliases: []string{"leche"}},
	{ID: "nata", CategoryID: "lacteos", NameES: "Nata", NameFR: "Crème liquide", DefaultUnit: UnitLiter, Aliases: []string{"crema", "nata para cocinar"}},
	{ID: "mantequilla", CategoryID: "lacteos", NameES: "Mantequilla", NameFR: "Beurre", DefaultUnit: UnitKg},
	{ID: "huevo", CategoryID: "lacteos", NameES: "Huevos", NameFR: "Œufs", DefaultUnit: UnitDozen, Aliases: []string{"huevo"}},
	{ID: "queso-parmesano", CategoryID: "lacteos", NameES: "Queso parmesano", NameFR: "Parmesan", DefaultUnit: UnitKg, Aliases: []string{"parmesano"}},
	{ID: "mozzarella", CategoryID: "lacteos", NameES: "Mozzarella", NameFR: "Mozzarella", DefaultUnit: UnitKg},
	{ID: "yogur", CategoryID: "lacteos", NameES: "Yogur natural", NameFR: "Yaourt nature", DefaultUnit: UnitPiece, Aliases: []string{"yogur", "yogurt"}},

	// secos
	{ID: "arroz", CategoryID: "secos", NameES: "Arroz", NameFR: "Riz", DefaultUnit: UnitKg},
	{ID: "pasta", CategoryID: "secos", NameES: "Pasta", NameFR: "Pâtes", DefaultUnit: UnitKg},
	{ID: "harina", CategoryID: "secos", NameES: "Harina de trigo", NameFR: "Farine de blé", DefaultUnit: UnitKg, Aliases: []string{"harina"}},
	{ID: "azucar", CategoryID: "secos", NameES: "Azúcar", NameFR: "Sucre", DefaultUnit: UnitKg},
	{ID: "lentejas", CategoryID: "secos", NameES: "Lentejas", NameFR: "Lentilles", DefaultUnit: UnitKg},
	{ID: "garbanzos", CategoryID: "secos", NameES: "Garbanzos", NameFR: "Pois chiches", DefaultUnit: UnitKg},
	{ID: "pan-rallado", CategoryID: "secos", NameES: "Pan rallado", NameFR: "Chapelure", DefaultUnit: UnitKg},
	{ID: "pan", CategoryID: "secos", NameES: "Pan", NameFR: "Pain", DefaultUnit: UnitPiece},

	// condimentos
	{ID: "sal", CategoryID: "condimentos", NameES: "Sal", NameFR: "Sel", DefaultUnit: UnitKg},
	{ID: "pimienta-negra", CategoryID: "condimentos", NameES: "Pimienta negra", NameFR: "Poivre noir", DefaultUnit: UnitGram, Aliases: []string{"pimienta"}},
	{ID: "pimenton", CategoryID: "condimentos", NameES: "Pimentón", NameFR: "Paprika", DefaultUnit: UnitGram},
	{ID: "comino", CategoryID: "condimentos", NameES: "Comino", NameFR: "Cumin", DefaultUnit: UnitGram},
	{ID: "oregano", CategoryID: "condimentos", NameES: "Orégano", NameFR: "Origan", DefaultUnit: UnitGram},
	{ID: "laurel", CategoryID: "condimentos", NameES: "Laurel", NameFR: "Laurier", DefaultUnit: UnitGram},
	{ID: "mostaza", CategoryID: "condimentos", NameES: "Mostaza", NameFR: "Moutarde", DefaultUnit: UnitJar},
	{ID: "mayonesa", CategoryID: "condimentos", NameES: "Mayonesa", NameFR: "Mayonnaise", DefaultUnit: UnitJar},
	{ID: "caldo-pollo", CategoryID: "condimentos", NameES: "Caldo de pollo", NameFR: "Bouillon de volaille", DefaultUnit: UnitLiter},
	{ID: "tomate-triturado", CategoryID: "condimentos", NameES: "Tomate triturado", NameFR: "Tomate concassée", DefaultUnit: UnitCan},

	// aceites
	{ID: "aceite-oliva", CategoryID: "aceites", NameES: "Aceite de oliva", NameFR: "Huile d'olive", DefaultUnit: UnitLiter, Aliases: []string{"aceite de oliva virgen extra", "aove"}},
	{ID: "aceite-girasol", CategoryID: "aceites", NameES: "Aceite de girasol", NameFR: "Huile de tournesol", DefaultUnit: UnitLiter},
	{ID: "vinagre", CategoryID: "aceites", NameES: "Vinagre de vino", NameFR: "Vinaigre de vin", DefaultUnit: UnitLiter, Aliases: []string{"vinagre"}},
	{ID: "vinagre-balsamico", CategoryID: "aceites", NameES: "Vinagre balsámico", NameFR: "Vinaigre balsamique", DefaultUnit: UnitJar},

	// bebidas
	{ID: "agua", CategoryID: "bebidas", NameES: "Agua mineral", NameFR: "Eau minérale", DefaultUnit: UnitLiter, Aliases: []string{"agua"}},
	{ID: "vino-tinto", CategoryID: "bebidas", NameES: "Vino tinto", NameFR: "Vin rouge", DefaultUnit: UnitLiter},
	{ID: "vino-blanco", CategoryID: "bebidas", NameES: "Vino blanco", NameFR: "Vin blanc", DefaultUnit: UnitLiter},
	{ID: "cerveza", CategoryID: "bebidas", NameES: "Cerveza", NameFR: "Bière", DefaultUnit: UnitCan},
	{ID: "zumo-naranja", CategoryID: "bebidas", NameES: "Zumo de naranja", NameFR: "Jus d'orange", DefaultUnit: UnitLiter},
	{ID: "cafe", CategoryID: "bebidas", NameES: "Café", NameFR: "Café", DefaultUnit: UnitKg},
}
