package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		// UI elements
		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#FFD700",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}
