package display

import (
	"fmt"
	"io"
	"strings"
)

const rule = "=========================================================================================================================="

// banner is the "Newsroom Image Resizer" title art.
var banner = []string{
	`      __                                                _____                                 __           _              `,
	`   /\ \ \_____      _____ _ __ ___   ___  _ __ ___      \_   \_ __ ___   __ _  __ _  ___     /__\ ___  ___(_)_______ _ __ `,
	`  /  \/ / _ \ \ /\ / / __| '__/ _ \ / _ \| '_ ` + "`" + ` _ \      / /\/ '_ ` + "`" + ` _ \ / _` + "`" + ` |/ _` + "`" + ` |/ _ \   / \/// _ \/ __| |_  / _ \ '__|`,
	` / /\  /  __/\ V  V /\__ \ | | (_) | (_) | | | | | |  /\/ /_ | | | | | | (_| | (_| |  __/  / _  \  __/\__ \ |/ /  __/ |   `,
	` \_\ \/ \___| \_/\_/ |___/_|  \___/ \___/|_| |_| |_|  \____/ |_| |_| |_|\__,_|\__, |\___|  \/ \_/\___||___/_/___\___|_|   `,
	`                                                                             |___/                                        `,
}

// PrintBanner writes the title art and the welcome line.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, strings.Join(banner, "\n"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Welcome to Newsroom Image Resizer!")
}
