package menu

var seedFoods = []Food{
	{
		UID:         "pho_bo",
		Name:        "Phở bò",
		Description: "Beef noodle soup with herbs",
		Price:       50000,
		ImageURL:    "/static/pho_bo.svg",
		Category:    "Noodles",
	},
	{
		UID:         "bun_cha",
		Name:        "Bún chả",
		Description: "Grilled pork with rice vermicelli",
		Price:       45000,
		ImageURL:    "/static/bun_cha.svg",
		Category:    "Noodles",
	},
	{
		UID:         "banh_mi",
		Name:        "Bánh mì thịt",
		Description: "Baguette with pork and pickled vegetables",
		Price:       25000,
		ImageURL:    "/static/banh_mi.svg",
		Category:    "Street food",
	},
	{
		UID:         "goi_cuon",
		Name:        "Gỏi cuốn",
		Description: "Fresh spring rolls with shrimp",
		Price:       30000,
		ImageURL:    "/static/goi_cuon.svg",
		Category:    "Starters",
	},
	{
		UID:         "com_tam",
		Name:        "Cơm tấm sườn",
		Description: "Broken rice with grilled pork chop",
		Price:       55000,
		ImageURL:    "/static/com_tam.svg",
		Category:    "Rice",
	},
	{
		UID:         "ca_phe_sua",
		Name:        "Cà phê sữa đá",
		Description: "Iced coffee with condensed milk",
		Price:       20000,
		ImageURL:    "/static/ca_phe_sua.svg",
		Category:    "Drinks",
	},
}
