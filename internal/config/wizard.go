package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// siteMarkers are files that identify a folder as the site root.
var siteMarkers = []string{"index.html", "public/index.html", "site/index.html"}

// detectSiteDir looks for a site entry page below the current directory.
func detectSiteDir() string {
	for _, marker := range siteMarkers {
		if _, err := os.Stat(marker); err == nil {
			return filepath.Dir(marker)
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to craftfolio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site folder.
	sitePrompt := promptui.Prompt{
		Label:   "Folder containing index.html",
		Default: detectSiteDir(),
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site dir: %w", err)
	}
	cfg.SiteDir = siteDir

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port to serve on",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)
	cfg.Contact.Endpoint = fmt.Sprintf("http://localhost:%d/api/contact", cfg.Port)

	// 3. Where the server keeps submissions.
	contactPrompt := promptui.Prompt{
		Label:   "Folder for contact-info.json",
		Default: cfg.ContactDir,
	}
	if cfg.ContactDir, err = contactPrompt.Run(); err != nil {
		return nil, fmt.Errorf("contact dir: %w", err)
	}

	// 4. CORS.
	corsPrompt := promptui.Select{
		Label: "Allowed origins for the contact API",
		Items: []string{
			"localhost only",
			"any origin   — needed when the page is hosted elsewhere",
		},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors selection: %w", err)
	}
	cfg.AllowAllOrigins = corsIdx == 1

	// 5. Extra static deny patterns.
	denyPrompt := promptui.Prompt{
		Label:   "Extra paths never served (comma-separated globs, blank for defaults)",
		Default: "",
	}
	denyStr, err := denyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("deny patterns: %w", err)
	}
	if extra := splitAndTrim(denyStr); len(extra) > 0 {
		cfg.StaticDeny = append(append([]string(nil), DefaultStaticDeny...), extra...)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
