package taxonomy

// Domains returns the built-in domain taxonomy: the top-level technical
// area a repository belongs to. Category and trigger order encode priority.
func Domains() Taxonomy {
	return Taxonomy{
		{Label: "Web", Triggers: []string{"web", "browser", "http", "https", "html", "css", "javascript", "react", "vue", "angular", "frontend", "backend", "server", "django", "flask", "api", "rest", "graphql", "express", "nextjs", "nuxt", "svelte"}},
		{Label: "Mobile", Triggers: []string{"android", "ios", "flutter", "react native", "kotlin", "swift", "mobile", "xamarin", "android tv", "cordova"}},
		{Label: "Data & AI", Triggers: []string{"machine learning", "deep learning", "ml", "ai ", " artificial", "data ", "dataset", "nlp", "vision", "model", "training", "neural", "pytorch", "tensorflow", "keras", "xgboost", "scikit", "huggingface"}},
		{Label: "DevOps & Cloud", Triggers: []string{"devops", "docker", "container", "kubernetes", "helm", "terraform", "ansible", "ci", "cd", "pipeline", "jenkins", "github actions", "gitlab", "ci/cd", "aws", "azure", "gcp", "cloud", "infrastructure", "deployment"}},
		{Label: "Systems & Networking", Triggers: []string{"kernel", "linux", "driver", "network", "tcp", "udp", "socket", "proxy", "vpn", "firewall", "embedded", "firmware", "operating system", "serial"}},
		{Label: "Productivity & Tools", Triggers: []string{"cli", "command line", "script", "tool", "automation", "productivity", "workflow", "testing", "formatter", "lint", "utility", "editor", "plugin", "extension", "generator", "packager"}},
		{Label: "Games & Multimedia", Triggers: []string{"game", "gaming", "engine", "unity", "unreal", "graphics", "render", "audio", "video", "media", "animation"}},
		{Label: "Security & Crypto", Triggers: []string{"security", "crypto", "cryptography", "blockchain", "wallet", "encryption", "decryption", "auth", "authentication", "authorization", "jwt", "tls", "ssl", "pentest", "hacking"}},
		{Label: "Finance & Business", Triggers: []string{"finance", "trading", "stock", "forex", "cryptocurrency", "market", "investment", "portfolio", "business", "billing", "payment"}},
	}
}

// ProjectTypes returns the built-in project-type taxonomy: the structural
// role of a repository.
func ProjectTypes() Taxonomy {
	return Taxonomy{
		{Label: "Framework", Triggers: []string{"framework"}},
		{Label: "Library", Triggers: []string{"library", "lib", "sdk", "package", "module"}},
		{Label: "Application", Triggers: []string{"application", "app", "project"}},
		{Label: "CLI/Tool", Triggers: []string{"cli", "command line", "tool", "script", "utility"}},
		{Label: "Template", Triggers: []string{"template", "starter", "boilerplate", "seed"}},
		{Label: "Plugin/Extension", Triggers: []string{"plugin", "extension"}},
		{Label: "Dataset", Triggers: []string{"dataset", "data set", "collection"}},
		{Label: "Configuration", Triggers: []string{"config", "dotfile", "configuration"}},
		{Label: "Examples", Triggers: []string{"example", "sample"}},
	}
}

// Subdomains returns the built-in subdomain taxonomy: finer-grained
// technology tags. Records matching nothing here fall back to their
// already-resolved domain label, not to "Other".
func Subdomains() Taxonomy {
	return Taxonomy{
		{Label: "React", Triggers: []string{"react", "reactjs", "react.js"}},
		{Label: "Vue", Triggers: []string{"vue", "vuejs", "vue.js"}},
		{Label: "Angular", Triggers: []string{"angular"}},
		{Label: "Node.js", Triggers: []string{"node.js", "nodejs", "node "}},
		{Label: "Express", Triggers: []string{"express"}},
		{Label: "Next.js", Triggers: []string{"next.js", "nextjs"}},
		{Label: "Django", Triggers: []string{"django"}},
		{Label: "Flask", Triggers: []string{"flask"}},
		{Label: "FastAPI", Triggers: []string{"fastapi"}},
		{Label: "Spring", Triggers: []string{"spring", "spring boot"}},
		{Label: "Kotlin", Triggers: []string{"kotlin"}},
		{Label: "Swift", Triggers: []string{"swift"}},
		{Label: "Flutter", Triggers: []string{"flutter"}},
		{Label: "PyTorch", Triggers: []string{"pytorch"}},
		{Label: "TensorFlow", Triggers: []string{"tensorflow"}},
		{Label: "Keras", Triggers: []string{"keras"}},
		{Label: "Kubernetes", Triggers: []string{"kubernetes"}},
		{Label: "Docker", Triggers: []string{"docker"}},
		{Label: "Terraform", Triggers: []string{"terraform"}},
		{Label: "Ansible", Triggers: []string{"ansible"}},
		{Label: "Helm", Triggers: []string{"helm"}},
		{Label: "Jenkins", Triggers: []string{"jenkins"}},
		{Label: "GitHub Actions", Triggers: []string{"github actions"}},
		{Label: "AWS", Triggers: []string{"aws", "amazon web services"}},
		{Label: "Azure", Triggers: []string{"azure"}},
		{Label: "GCP", Triggers: []string{"gcp", "google cloud"}},
		{Label: "Unity", Triggers: []string{"unity"}},
		{Label: "Unreal", Triggers: []string{"unreal"}},
		{Label: "Blockchain", Triggers: []string{"blockchain"}},
		{Label: "Cryptocurrency", Triggers: []string{"crypto", "cryptocurrency"}},
	}
}
