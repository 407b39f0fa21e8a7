package service

// EnvWriter persists bootstrap credentials for the next process start.
type EnvWriter interface {
	// Write merges values into the env file at path, keeping unrelated keys.
	Write(path string, values map[string]string) error
}
