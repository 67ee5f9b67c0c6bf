package colors

// kanagawa holds the Kanagawa palette shared by the wave, dragon and lotus presets
type kanagawa struct {
	sumiInk1, sumiInk2, sumiInk3, sumiInk4, sumiInk6 string
	waveBlue1, waveBlue2, waveAqua2                  string
	winterBlue, winterYellow, winterRed              string
	fujiWhite, fujiGray, oniViolet, crystalBlue      string
	springGreen, carpYellow, sakuraPink              string
	dragonBlue, roninYellow, samuraiRed              string

	dragonBlack1, dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh, dragonViolet, dragonBlue2      string
	dragonGreen2, dragonYellow, dragonRed, dragonAqua      string

	lotusWhite0, lotusWhite2, lotusWhite4, lotusInk1  string
	lotusGray3, lotusViolet4, lotusBlue4, lotusGreen  string
	lotusYellow, lotusPink, lotusTeal1                string
}

var palette = kanagawa{
	sumiInk1:     "#181820",
	sumiInk2:     "#1A1A22",
	sumiInk3:     "#1F1F28",
	sumiInk4:     "#2A2A37",
	sumiInk6:     "#54546D",
	waveBlue1:    "#223249",
	waveBlue2:    "#2D4F67",
	waveAqua2:    "#7AA89F",
	winterBlue:   "#252535",
	winterYellow: "#49443C",
	winterRed:    "#43242B",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	carpYellow:   "#E6C384",
	sakuraPink:   "#D27E99",
	dragonBlue:   "#658594",
	roninYellow:  "#FF9E3B",
	samuraiRed:   "#E82424",

	dragonBlack1: "#0D0C0C",
	dragonBlack3: "#181616",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonGreen2: "#8A9A7B",
	dragonYellow: "#C4B28A",
	dragonRed:    "#C4746E",
	dragonAqua:   "#8EA4A2",

	lotusWhite0:  "#D5CEA3",
	lotusWhite2:  "#E5DDB0",
	lotusWhite4:  "#E7DBA0",
	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusYellow:  "#77713F",
	lotusPink:    "#B35B79",
	lotusTeal1:   "#4E8CA2",
}
