package main

import (
	"github.com/joho/godotenv"

	"github.com/kamusis/skills-scout/cmd"
)

func main() {
	// A .env in the working directory may set SKILLS_SCOUT_* for this run.
	_ = godotenv.Load()
	cmd.Execute()
}
