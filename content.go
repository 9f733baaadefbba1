package flyer

// Default asset and output locations, relative to the working directory.
const (
	DefaultLogoPath   = "assets/img/logo.png"
	DefaultQRPath     = "assets/img/gym-review-qr.png"
	DefaultOutputPath = "recursos/flyer-resenas.pdf"
)

// DefaultStarCount is the number of stars in the rating row.
const DefaultStarCount = 5

// Content is the text and artwork placed on the flyer.
type Content struct {
	TitleTop    string
	TitleBottom string
	Message     []string
	Footer      string
	Tagline     string
	StarCount   int
	LogoPath    string
	QRPath      string
	// QRData, when set, is used if the file at QRPath does not exist.
	QRData []byte
}

// DefaultContent returns the gym review flyer copy.
func DefaultContent() Content {
	return Content{
		TitleTop:    "¡APÓYANOS CON TUS",
		TitleBottom: "ESTRELLAS!",
		Message: []string{
			"Tu apoyo nos ayuda a seguir creciendo.",
			"Escanea el código para dejarnos tu comentario.",
		},
		Footer:    "ATHLETIC GYM",
		Tagline:   "¡Gracias por ser parte de la familia!",
		StarCount: DefaultStarCount,
		LogoPath:  DefaultLogoPath,
		QRPath:    DefaultQRPath,
	}
}

// Lines returns every text string in reading order.
func (c Content) Lines() []string {
	lines := make([]string, 0, 4+len(c.Message))
	lines = append(lines, c.TitleTop, c.TitleBottom)
	lines = append(lines, c.Message...)
	lines = append(lines, c.Footer, c.Tagline)
	return lines
}
