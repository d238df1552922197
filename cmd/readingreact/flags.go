package readingreact

var (
	storagePath   string
	port          int
	dev           bool
	watchDir      string
	pattern       string
	overflow      string
	defaultLocale string
	outPath       string
	rows          int
	columns       int
	verbose       bool
)
