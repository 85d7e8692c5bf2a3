package config

import "github.com/joho/godotenv"

// loadDotenv loads a .env file from the working directory into the process
// environment, if one exists. Values already present in the environment win,
// so an exported variable always overrides the file. A missing file is not
// an error.
func loadDotenv() {
	_ = godotenv.Load()
}
