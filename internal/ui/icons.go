package ui

// iconSet holds the decorative glyphs used by the renderer. Purely
// presentational; the ASCII set exists for terminals without a Nerd Font.
type iconSet struct {
	App      string
	Notebook string
	Note     string
	Folder   string
	Chevron  string
	Add      string
	Edit     string
	Delete   string
	Search   string
	Help     string
	Quit     string
	Back     string
	Save     string
	Saved    string
	Modified string
	Info     string
	Warning  string
	Calendar string
	Tag      string
}

var nerdIcons = iconSet{
	App:      "\U000f039a",
	Notebook: "\U000f05d9",
	Note:     "\U000f039e",
	Folder:   "",
	Chevron:  "",
	Add:      "",
	Edit:     "",
	Delete:   "",
	Search:   "",
	Help:     "",
	Quit:     "\U000f05fc",
	Back:     "",
	Save:     "",
	Saved:    "",
	Modified: "\U000f06d0",
	Info:     "",
	Warning:  "",
	Calendar: "",
	Tag:      "",
}

var asciiIcons = iconSet{
	App:      "#",
	Notebook: "=",
	Note:     "-",
	Folder:   "+",
	Chevron:  ">",
	Add:      "+",
	Edit:     "*",
	Delete:   "x",
	Search:   "/",
	Help:     "?",
	Quit:     "q",
	Back:     "<",
	Save:     "v",
	Saved:    "v",
	Modified: "!",
	Info:     "i",
	Warning:  "!",
	Calendar: "@",
	Tag:      "#",
}

// iconsFor selects an icon set by configured name, defaulting to ASCII.
func iconsFor(name string) iconSet {
	if name == "nerd" {
		return nerdIcons
	}
	return asciiIcons
}
