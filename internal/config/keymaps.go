package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Drag and drop
	Grab   string `yaml:"grab"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",

		// Columns
		CreateColumn: "C",
		RenameColumn: "R",
		DeleteColumn: "X",

		// Drag and drop
		Grab:   "space",
		Drop:   "enter",
		Cancel: "esc",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.CreateColumn, defaults.CreateColumn)
	fill(&k.RenameColumn, defaults.RenameColumn)
	fill(&k.DeleteColumn, defaults.DeleteColumn)
	fill(&k.Grab, defaults.Grab)
	fill(&k.Drop, defaults.Drop)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
