package systemprompt

// Provider is a static ContextProvider built from a title and content.
type Provider struct {
	ProviderTitle string
	ProviderInfo  string
}

func NewProvider(title, info string) *Provider {
	return &Provider{ProviderTitle: title, ProviderInfo: info}
}

func (p Provider) Title() string {
	return p.ProviderTitle
}

func (p Provider) Info() string {
	return p.ProviderInfo
}
