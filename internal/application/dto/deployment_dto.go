package dto

// DeployRequest represents the request to deploy a single HTML page
type DeployRequest struct {
	// HTML is the page content, base64 encoded
	HTML string `json:"html" example:"PGgxPkhlbGxvPC9oMT4="`
}

// DeployResult is returned for every deploy attempt. Fields present depend on the outcome.
type DeployResult struct {
	Success   bool   `json:"success"`
	URL       string `json:"url,omitempty" example:"https://html-k3x9q2-1700000000000.vercel.app"`
	ProjectID string `json:"projectId,omitempty" example:"dpl_89qyp1cskzkLrVicDaZoDbjyHuDJ"`
	Name      string `json:"name,omitempty" example:"html-k3x9q2-1700000000000"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
}

// MethodNotAllowedResponse is returned for methods other than POST and OPTIONS
type MethodNotAllowedResponse struct {
	Error string `json:"error" example:"method not allowed"`
}
