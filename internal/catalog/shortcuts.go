package catalog

import (
	"fmt"

	"github.com/keydeckapp/keydeck-server/internal/domain"
)

// seed is the catalog source data. IDs are assigned from position, so
// entries must only ever be appended, never reordered or removed.
type seed struct {
	title       string
	keys        string
	description string
	category    string
	platform    string
}

// Shortcuts returns the full built-in catalog in canonical order.
// The returned slice is freshly allocated on each call.
func Shortcuts() []domain.Shortcut {
	out := make([]domain.Shortcut, len(seedShortcuts))
	for i, s := range seedShortcuts {
		out[i] = domain.Shortcut{
			ID:          fmt.Sprintf("sc-%d", i+1),
			Title:       s.title,
			Keys:        s.keys,
			Description: s.description,
			Category:    s.category,
			Platform:    s.platform,
		}
	}
	return out
}

var seedShortcuts = []seed{
	// PHPStorm
	{"Quick Open File", "Ctrl+Shift+N", "Quickly open any file in your project", "navigation", "phpstorm"},
	{"Go to Declaration", "Ctrl+B", "Navigate to the declaration of a symbol", "navigation", "phpstorm"},
	{"Find in Files", "Ctrl+Shift+F", "Search for text across all project files", "navigation", "phpstorm"},
	{"Recent Files", "Ctrl+E", "Show recently opened files", "navigation", "phpstorm"},
	{"Duplicate Line", "Ctrl+D", "Duplicate the current line or selection", "editing", "phpstorm"},
	{"Multiple Cursors", "Alt+Click", "Add multiple cursors for simultaneous editing", "editing", "phpstorm"},
	{"Comment Line", "Ctrl+/", "Toggle line comment", "editing", "phpstorm"},
	{"Reformat Code", "Ctrl+Alt+L", "Automatically format code according to style settings", "editing", "phpstorm"},
	{"Toggle Breakpoint", "Ctrl+F8", "Toggle breakpoint at current line", "debugging", "phpstorm"},
	{"Step Over", "F8", "Step over to the next line in debugging", "debugging", "phpstorm"},
	{"Step Into", "F7", "Step into function calls during debugging", "debugging", "phpstorm"},
	{"Resume Program", "F9", "Continue program execution", "debugging", "phpstorm"},
	{"Run File", "Ctrl+Shift+F10", "Run current file", "debugging", "phpstorm"},
	{"Debug File", "Ctrl+Shift+F9", "Debug current file", "debugging", "phpstorm"},
	{"Select All", "Ctrl+A", "Select all text in current file", "editing", "phpstorm"},
	{"Cut Line", "Ctrl+X", "Cut current line to clipboard", "editing", "phpstorm"},
	{"Copy Line", "Ctrl+C", "Copy current line to clipboard", "editing", "phpstorm"},
	{"Paste", "Ctrl+V", "Paste from clipboard", "editing", "phpstorm"},
	{"Undo", "Ctrl+Z", "Undo last action", "editing", "phpstorm"},
	{"Redo", "Ctrl+Shift+Z", "Redo last undone action", "editing", "phpstorm"},
	{"Move Line Up", "Ctrl+Shift+Up", "Move current line up", "editing", "phpstorm"},
	{"Move Line Down", "Ctrl+Shift+Down", "Move current line down", "editing", "phpstorm"},
	{"Delete Line", "Ctrl+Y", "Delete current line", "editing", "phpstorm"},
	{"Expand Selection", "Ctrl+W", "Expand selection to word/block", "editing", "phpstorm"},
	{"Shrink Selection", "Ctrl+Shift+W", "Shrink selection", "editing", "phpstorm"},
	{"Surround With", "Ctrl+Alt+T", "Surround selection with template", "editing", "phpstorm"},
	{"Join Lines", "Ctrl+Shift+J", "Join current line with next", "editing", "phpstorm"},
	{"Quick Documentation", "Ctrl+Q", "Show quick documentation", "navigation", "phpstorm"},
	{"Parameter Info", "Ctrl+P", "Show function parameter info", "navigation", "phpstorm"},
	{"Show Error Description", "Ctrl+F1", "Show error description at cursor", "navigation", "phpstorm"},
	{"Find Usage", "Alt+F7", "Find usages of symbol", "navigation", "phpstorm"},
	{"Refactor Rename", "Shift+F6", "Rename symbol across project", "editing", "phpstorm"},
	{"Extract Method", "Ctrl+Alt+M", "Extract selection into method", "editing", "phpstorm"},
	{"Extract Variable", "Ctrl+Alt+V", "Extract expression into variable", "editing", "phpstorm"},
	{"Optimize Imports", "Ctrl+Alt+O", "Optimize and clean up imports", "editing", "phpstorm"},
	{"Go to Line", "Ctrl+G", "Go to specific line number", "navigation", "phpstorm"},
	{"Structure View", "Alt+7", "Open file structure view", "navigation", "phpstorm"},
	{"Project View", "Alt+1", "Open project files view", "navigation", "phpstorm"},
	{"Find Replace", "Ctrl+R", "Find and replace in file", "navigation", "phpstorm"},
	{"Find Replace All", "Ctrl+Shift+R", "Find and replace in project", "navigation", "phpstorm"},

	// Arch Linux
	{"Package Update", "sudo pacman -Syu", "Update all installed packages", "system", "archlinux"},
	{"Install Package", "sudo pacman -S [package]", "Install a specific package", "system", "archlinux"},
	{"Remove Package", "sudo pacman -R [package]", "Remove a package", "system", "archlinux"},
	{"Search Package", "pacman -Ss [query]", "Search for packages in repositories", "system", "archlinux"},
	{"Clean Package Cache", "sudo pacman -Sc", "Clean unused package cache", "system", "archlinux"},
	{"Package Info", "pacman -Si [package]", "Show detailed package information", "system", "archlinux"},
	{"List Installed", "pacman -Q", "List all installed packages", "system", "archlinux"},
	{"AUR Helper Install", "yay -S [package]", "Install package from AUR with yay", "system", "archlinux"},
	{"Open Terminal", "Ctrl+Alt+T", "Open a new terminal window", "window", "archlinux"},
	{"Switch Desktop", "Ctrl+Alt+Arrow", "Switch between virtual desktops", "window", "archlinux"},
	{"Close Window", "Alt+F4", "Close the current window", "window", "archlinux"},
	{"Tiling Windows", "Super+Arrow", "Tile windows to screen edges", "window", "archlinux"},
	{"Application Launcher", "Super+Space", "Open application launcher", "window", "archlinux"},
	{"Lock Screen", "Super+L", "Lock the screen", "window", "archlinux"},
	{"Directory Navigation", "cd ..", "Go up one directory level", "navigation", "archlinux"},
	{"List Files", "ls -la", "List all files with detailed information", "navigation", "archlinux"},
	{"Find Files", "find / -name '[filename]'", "Search for files system-wide", "navigation", "archlinux"},
	{"File Permissions", "chmod 755 [file]", "Change file permissions", "navigation", "archlinux"},
	{"Copy Files", "cp -r [source] [destination]", "Copy files and directories recursively", "navigation", "archlinux"},
	{"Move Files", "mv [source] [destination]", "Move or rename files and directories", "navigation", "archlinux"},
	{"Text Editor", "nano [filename]", "Open text editor for file editing", "editing", "archlinux"},
	{"Vim Editor", "vim [filename]", "Open vim text editor", "editing", "archlinux"},
	{"Archive Extract", "tar -xzf [archive.tar.gz]", "Extract tar.gz archive", "system", "archlinux"},
	{"System Logs", "journalctl -f", "Follow system logs in real-time", "system", "archlinux"},
	{"Service Status", "systemctl status [service]", "Check systemd service status", "system", "archlinux"},
	{"Start Service", "sudo systemctl start [service]", "Start a systemd service", "system", "archlinux"},
	{"Process Monitor", "htop", "Interactive process monitor", "system", "archlinux"},

	// Ubuntu
	{"Update System", "sudo apt update && sudo apt upgrade", "Update package list and upgrade all packages", "system", "ubuntu"},
	{"Install Package", "sudo apt install [package]", "Install a specific package", "system", "ubuntu"},
	{"Remove Package", "sudo apt remove [package]", "Remove a package", "system", "ubuntu"},
	{"Search Package", "apt search [query]", "Search for packages in repositories", "system", "ubuntu"},
	{"Show Applications", "Super", "Open activities overview and application launcher", "window", "ubuntu"},
	{"Switch Windows", "Alt+Tab", "Switch between open applications", "window", "ubuntu"},
	{"Lock Screen", "Super+L", "Lock the screen", "window", "ubuntu"},
	{"Take Screenshot", "PrtScr", "Take a screenshot of the entire screen", "window", "ubuntu"},
	{"Open Terminal", "Ctrl+Alt+T", "Open a new terminal window", "window", "ubuntu"},
	{"Close Window", "Alt+F4", "Close the current window", "window", "ubuntu"},
	{"Minimize Window", "Super+H", "Minimize the current window", "window", "ubuntu"},
	{"Maximize Window", "Super+Up", "Maximize the current window", "window", "ubuntu"},
	{"Switch Workspaces", "Super+Page Up/Down", "Switch between workspaces", "window", "ubuntu"},
	{"Show Desktop", "Super+D", "Show desktop and hide all windows", "window", "ubuntu"},
	{"Open File Manager", "Super+E", "Open the file manager", "navigation", "ubuntu"},
	{"Go Home Directory", "cd ~", "Navigate to home directory", "navigation", "ubuntu"},
	{"List Hidden Files", "ls -la", "List all files including hidden ones", "navigation", "ubuntu"},
	{"Find Files", "find . -name '[filename]'", "Search for files by name", "navigation", "ubuntu"},
	{"Check Disk Usage", "df -h", "Show disk space usage", "system", "ubuntu"},
	{"Process List", "ps aux", "Show running processes", "system", "ubuntu"},
	{"Kill Process", "sudo kill -9 [PID]", "Force kill a process by PID", "system", "ubuntu"},
	{"System Monitor", "htop", "Interactive process monitor", "system", "ubuntu"},
	{"Network Status", "ip addr show", "Show network interface information", "system", "ubuntu"},
}
