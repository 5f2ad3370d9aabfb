package models

// FileItem is one resolved media entry from the target site. Identity key is
// ID; uniqueness is enforced per resolution call, not globally.
type FileItem struct {
	Domain string `json:"domain"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
}

type GenerateFileRequest struct {
	URL string `json:"url"`
}

type GenerateFileResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	File    []FileItem `json:"file"`
}

type GenerateLinkRequest struct {
	Domain string `json:"domain"`
	ID     string `json:"id"`
}

type GenerateLinkResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

// ServiceEndpoint describes one API operation in the index response.
type ServiceEndpoint struct {
	Method   string   `json:"method"`
	Endpoint string   `json:"endpoint"`
	URL      string   `json:"url"`
	Params   []string `json:"params"`
	Response []string `json:"response"`
}

type IndexResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Service []ServiceEndpoint `json:"service"`
	Message string            `json:"message"`
}
