package parser

// Document is the structured model of a single page, built once per analysis.
type Document struct {
	Text           string              `json:"text"`
	HTML           string              `json:"html"`
	WordCount      int                 `json:"wordCount"`
	CharacterCount int                 `json:"characterCount"`
	Headings       map[string][]string `json:"headings"`
	Images         []Image             `json:"images"`
	Links          []Link              `json:"links"`
	Paragraphs     []string            `json:"paragraphs"`
	ListCount      int                 `json:"listCount"`
	MetaTags       MetaTags            `json:"metaTags"`
	Structural     StructuralElements  `json:"structuralElements"`
}

type Image struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Title    string `json:"title"`
	HasAlt   bool   `json:"hasAlt"`
	HasTitle bool   `json:"hasTitle"`
}

// Link classification values.
const (
	LinkInternal = "internal"
	LinkExternal = "external"
	LinkEmail    = "email"
	LinkPhone    = "phone"
	LinkAnchor   = "anchor"
)

type Link struct {
	Href    string `json:"href"`
	Text    string `json:"text"`
	Rel     string `json:"rel"`
	Type    string `json:"type"`
	HasText bool   `json:"hasText"`
}

type MetaTags struct {
	Viewport  string `json:"viewport"`
	Canonical string `json:"canonical"`
	Robots    string `json:"robots"`
	Charset   string `json:"charset"`
	Language  string `json:"language"`
}

type StructuralElements struct {
	HasNav        bool `json:"hasNav"`
	HasHeader     bool `json:"hasHeader"`
	HasFooter     bool `json:"hasFooter"`
	HasMain       bool `json:"hasMain"`
	HasArticle    bool `json:"hasArticle"`
	SemanticScore int  `json:"semanticScore"`
}
