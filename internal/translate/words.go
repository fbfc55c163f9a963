package translate

// Common culinary words, ES -> FR. Keys are normalized (lowercase, no
// accents).
var commonWords = map[string]string{
	"el": "le", "la": "la", "los": "les", "las": "les",
	"un": "un", "una": "une", "unos": "des", "unas": "des",

	"de": "de", "del": "du", "con": "avec", "sin": "sans", "por": "par",
	"para": "pour", "en": "en", "y": "et", "al": "au",

	"fresco": "frais", "fresca": "fraîche", "frescos": "frais", "frescas": "fraîches",
	"molido": "moulu", "molida": "moulue", "molidos": "moulus", "molidas": "moulues",
	"entero": "entier", "entera": "entière", "enteros": "entiers", "enteras": "entières",
	"blanco": "blanc", "blanca": "blanche", "blancos": "blancs", "blancas": "blanches",
	"negro": "noir", "negra": "noire", "negros": "noirs", "negras": "noires",
	"rojo": "rouge", "roja": "rouge", "verde": "vert", "amarillo": "jaune",
	"virgen": "vierge", "extra": "extra", "grande": "grand", "pequeno": "petit",
	"congelado": "surgelé", "congelada": "surgelée", "casero": "maison", "casera": "maison",
	"triturado": "concassé", "deshidratada": "déshydratée", "marinado": "mariné",
	"ahumado": "fumé", "ahumada": "fumée", "picado": "haché", "picada": "hachée",
	"rallado": "râpé", "rallada": "râpée", "seco": "sec", "seca": "sèche",

	"pollo": "poulet", "res": "bœuf", "vaca": "bœuf", "cerdo": "porc", "pavo": "dinde",
	"pato": "canard", "cordero": "agneau", "ternera": "veau", "carne": "viande",
	"conejo": "lapin", "higado": "foie", "salchicha": "saucisse", "salchichas": "saucisses",

	"pescado": "poisson", "salmon": "saumon", "bacalao": "morue", "trucha": "truite",
	"lubina": "bar", "camarones": "crevettes", "camaron": "crevette", "gambas": "crevettes",
	"almejas": "palourdes", "sardinas": "sardines", "anchoas": "anchois", "rape": "lotte",

	"verdura": "légume", "verduras": "légumes", "cebolla": "oignon", "cebollas": "oignons",
	"ajo": "ail", "tomate": "tomate", "tomates": "tomates", "papa": "pomme de terre",
	"papas": "pommes de terre", "patata": "pomme de terre", "patatas": "pommes de terre",
	"zanahoria": "carotte", "zanahorias": "carottes", "lechuga": "laitue",
	"brocoli": "brocoli", "espinaca": "épinards", "perejil": "persil", "cilantro": "coriandre",
	"apio": "céleri", "col": "chou", "coliflor": "chou-fleur", "judias": "haricots",
	"guisantes": "petits pois", "maiz": "maïs", "calabaza": "potiron", "albahaca": "basilic",
	"romero": "romarin", "tomillo": "thym", "menta": "menthe", "hierbabuena": "menthe",

	"fruta": "fruit", "frutas": "fruits", "manzana": "pomme", "platano": "banane",
	"limon": "citron", "naranja": "orange", "fresa": "fraise", "fresas": "fraises",
	"uva": "raisin", "uvas": "raisins", "melocoton": "pêche", "durazno": "pêche",
	"pera": "poire", "cereza": "cerise", "cerezas": "cerises", "frambuesa": "framboise",
	"frambuesas": "framboises", "lima": "citron vert", "coco": "noix de coco",

	"lacteo": "produit laitier", "lacteos": "produits laitiers", "leche": "lait",
	"queso": "fromage", "quesos": "fromages", "mantequilla": "beurre", "crema": "crème",
	"nata": "crème", "yogur": "yaourt", "huevo": "œuf", "huevos": "œufs",

	"pasta": "pâtes", "arroz": "riz", "pan": "pain", "harina": "farine", "trigo": "blé",
	"legumbre": "légumineuse", "lenteja": "lentille", "lentejas": "lentilles",
	"garbanzo": "pois chiche", "garbanzos": "pois chiches", "azucar": "sucre",
	"chocolate": "chocolat", "almendra": "amande", "almendras": "amandes",
	"nuez": "noix", "nueces": "noix", "levadura": "levure", "avena": "avoine",

	"aceite": "huile", "aceites": "huiles", "oliva": "olive", "vegetal": "végétal",
	"girasol": "tournesol", "manteca": "saindoux",

	"sal": "sel", "pimienta": "poivre", "especia": "épice", "especias": "épices",
	"condimento": "assaisonnement", "vinagre": "vinaigre", "mostaza": "moutarde",
	"mayonesa": "mayonnaise", "salsa": "sauce", "salsas": "sauces", "caldo": "bouillon",
	"caldos": "bouillons", "miel": "miel", "canela": "cannelle", "vainilla": "vanille",

	"agua": "eau", "vino": "vin", "cerveza": "bière", "zumo": "jus", "jugo": "jus",
	"cafe": "café", "te": "thé",

	"unidad": "unité", "unidades": "unités", "kilogramo": "kilogramme",
	"kilogramos": "kilogrammes", "gramo": "gramme", "gramos": "grammes",
	"litro": "litre", "litros": "litres", "mililitro": "millilitre",
	"mililitros": "millilitres", "caja": "caisse", "cajas": "caisses",
	"paquete": "paquet", "paquetes": "paquets", "lata": "boîte", "latas": "boîtes",
	"bote": "pot", "botes": "pots", "docena": "douzaine", "docenas": "douzaines",
	"bolsa": "sac", "bolsas": "sacs", "botella": "bouteille", "botellas": "bouteilles",
}
