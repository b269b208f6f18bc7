package display

import (
	"fmt"
	"os"

	"github.com/BuschnicK/GpxToKml/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  ____  ____  __  __ ____   _  __ __  __  _
 / ___||  _ \ \ \/ /|___ \ | |/ /|  \/  || |
| |  _ | |_) | \  /   __) || ' / | |\/| || |
| |_| ||  __/  /  \  / __/ | . \ | |  | || |___
 \____||_|    /_/\_\|_____||_|\_\|_|  |_||_____|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
