package dto

type WindowOutput struct {
	Process string
	Title   string
}

type MetadataOutput struct {
	Name     string
	Version  string
	Platform string
}
