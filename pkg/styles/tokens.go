package styles

// Color is a CSS color value.
type Color string

// Design token colors.
const (
	White      Color = "#ffffff"
	Black      Color = "#000000"
	Black50    Color = "rgba(0, 0, 0, 0.50)"
	Black20    Color = "rgba(0, 0, 0, 0.20)"
	Blue       Color = "#4c8eff"
	Blue30     Color = "rgba(76, 142, 255, 0.30)"
	DarkBlue2  Color = "#2645a3"
	Green      Color = "#3dcc8e"
	Red        Color = "#ff4d61"
	Purple     Color = "#8852ff"
	Purple2    Color = "#a8708a"
	LightGrey2 Color = "#e6e6e6"
)

// Margins is the spacing scale in pixels.
var Margins = struct {
	XTiny       int
	Tiny        int
	XSmall      int
	Small       int
	Medium      int
	MediumLarge int
	Large       int
}{
	XTiny:       2,
	Tiny:        4,
	XSmall:      8,
	Small:       12,
	Medium:      16,
	MediumLarge: 24,
	Large:       40,
}

// BorderRadius is the default corner radius in pixels.
const BorderRadius = 3

// Global layout styles.
var (
	FlexBoxColumn = Style{"display": "flex", "flexDirection": "column"}
	FlexBoxRow    = Style{"display": "flex", "flexDirection": "row"}
	FlexBoxCenter = Style{"alignItems": "center", "justifyContent": "center"}
	FillAbsolute  = Style{"position": "absolute", "top": 0, "right": 0, "bottom": 0, "left": 0}
)
