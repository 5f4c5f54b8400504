package gallery

import (
	"regexp"
	"strings"
)

// FolderConfig binds one category name to its source folder. The name is the
// category key across the whole app and must be unique.
type FolderConfig struct {
	Name     string
	FolderID string
}

var driveFolderPattern = regexp.MustCompile(`folders/([a-zA-Z0-9-_]+)`)

// ParseFolderConfig parses the GALLERY_FOLDERS value: comma-separated
// "name:folderId" pairs. Entries with a missing name or id are skipped.
func ParseFolderConfig(config string) []FolderConfig {
	var folders []FolderConfig
	for _, item := range strings.Split(config, ",") {
		name, folderID, _ := strings.Cut(item, ":")
		name = strings.TrimSpace(name)
		folderID = strings.TrimSpace(folderID)
		if name == "" || folderID == "" {
			continue
		}
		folders = append(folders, FolderConfig{Name: name, FolderID: ExtractFolderID(folderID)})
	}
	return folders
}

// ExtractFolderID accepts either a bare folder id or a full Drive folder URL
// and returns the embedded id.
func ExtractFolderID(input string) string {
	if strings.Contains(input, "drive.google.com") {
		if m := driveFolderPattern.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	return input
}
