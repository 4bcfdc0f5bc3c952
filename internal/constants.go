package internal

type uiTheme struct {
	PrimaryColor   string
	SecondaryColor string
	ErrorColor     string
	TertiaryColor  string
	CardTextColor  string
}

var Theme = uiTheme{
	PrimaryColor:   "#FF75B5", // Rose, used for the title and the progress bar
	SecondaryColor: "#ccc",    // Lighter gray for hints and labels
	ErrorColor:     "#FF5F5F", // Red for errors
	TertiaryColor:  "#666666", // Dim gray for the empty card
	CardTextColor:  "#FFFFFF", // Card text on the category colour
}
