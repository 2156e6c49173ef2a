package widgets

// Key is a keyboard key name as reported by the host ("ArrowLeft", " ", ...).
type Key string

const (
	KeyHome  Key = "Home"
	KeyEnd   Key = "End"
	KeyLeft  Key = "ArrowLeft"
	KeyRight Key = "ArrowRight"
	KeyUp    Key = "ArrowUp"
	KeyDown  Key = "ArrowDown"
	KeySpace Key = " "
	KeyEnter Key = "Enter"
)
