package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/tabwriter"

	fcolor "github.com/fatih/color"
	"github.com/josephlewis42/debsh/core/vos"
	"github.com/mattn/go-runewidth"
	getopt "github.com/pborman/getopt/v2"
)

// Ls implements the UNIX ls command.
func Ls(ctx context.Context, virtOS vos.VOS) error {
	opts := getopt.New()
	listAll := opts.Bool('a', "don't ignore entries starting with .")
	longListing := opts.Bool('l', "use a long listing format")
	humanSize := opts.BoolLong("human-readable", 'h', "print human readable sizes")
	lineWidth := opts.IntLong("width", 'w', virtOS.GetPTY().Width, "set the column width, 0 is infinite")
	helpOpt := opts.BoolLong("help", '?', "show help and exit")

	var color ColorPrinter
	color.Init(opts, virtOS)

	if err := opts.Getopt(virtOS.Args(), nil); err != nil || *helpOpt {
		w := virtOS.Stdout()
		if err != nil {
			PrintError(virtOS, "ls: %s", err)
		}
		fmt.Fprintln(w, "Usage: ls [OPTION]... [FILE]...")
		fmt.Fprintln(w, "List information about the FILEs (the current directory by default).")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		opts.PrintOptions(w)
		return nil
	}

	targets := opts.Args()
	if len(targets) == 0 {
		targets = []string{"."}
	}
	sort.Strings(targets)

	sizeFmt := func(bytes int64) string {
		return fmt.Sprintf("%d", bytes)
	}
	if *humanSize {
		sizeFmt = BytesToHuman
	}

	width := *lineWidth
	if width <= 0 {
		width = int(^uint(0) >> 1)
	}

	showDirectoryNames := len(targets) > 1
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := listEntries(virtOS, target, *listAll)
		if err != nil {
			PrintError(virtOS, "ls: cannot access '%s': %s", target, describeErr(err))
			continue
		}

		if showDirectoryNames {
			if i > 0 {
				fmt.Fprintln(virtOS.Stdout())
			}
			fmt.Fprintf(virtOS.Stdout(), "%s:\n", target)
		}

		if *longListing {
			writeLongListing(virtOS, &color, entries, sizeFmt)
		} else {
			writeColumns(virtOS, &color, entries, width)
		}
	}

	return nil
}

// listEntries lists a directory sorted by name, a file lists as itself.
func listEntries(virtOS vos.VOS, target string, all bool) ([]os.FileInfo, error) {
	stat, err := virtOS.Stat(target)
	if err != nil {
		return nil, err
	}
	if !stat.IsDir() {
		return []os.FileInfo{namedInfo{stat, target}}, nil
	}

	dir, err := virtOS.Open(target)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	infos, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}

	var out []os.FileInfo
	for _, info := range infos {
		if !all && strings.HasPrefix(info.Name(), ".") {
			continue
		}
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out, nil
}

// namedInfo reports a file under the name it was given on the command line.
type namedInfo struct {
	os.FileInfo
	name string
}

func (n namedInfo) Name() string {
	return n.name
}

func writeLongListing(virtOS vos.VOS, color *ColorPrinter, entries []os.FileInfo, sizeFmt func(int64) string) {
	var blocks int64
	for _, f := range entries {
		blocks += (f.Size() + 1023) / 1024
	}
	fmt.Fprintf(virtOS.Stdout(), "total %d\n", blocks)

	currentYear := virtOS.Now().Year()
	owner := virtOS.Username()

	tw := tabwriter.NewWriter(virtOS.Stdout(), 0, 0, 1, ' ', 0)
	for _, f := range entries {
		hardLinks := 1
		if f.IsDir() {
			hardLinks = 2
		}

		// Include time if current year.
		modTime := f.ModTime().Format("Jan _2  2006")
		if f.ModTime().Year() >= currentYear {
			modTime = f.ModTime().Format("Jan _2 15:04")
		}

		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			f.Mode().String(),
			hardLinks,
			owner,
			owner,
			sizeFmt(f.Size()),
			modTime,
			color.Sprintf(Dircolor(f), "%s", f.Name()))
	}
	tw.Flush()
}

func writeColumns(virtOS vos.VOS, color *ColorPrinter, entries []os.FileInfo, screenWidth int) {
	if len(entries) == 0 {
		return
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	rows, colWidths := columnize(names, screenWidth)
	w := virtOS.Stdout()
	for row := 0; row < rows; row++ {
		for col := range colWidths {
			index := col*rows + row
			if index >= len(entries) {
				break
			}
			if col > 0 {
				fmt.Fprint(w, strings.Repeat(" ", colPadding))
			}

			name := names[index]
			fmt.Fprint(w, color.Sprintf(Dircolor(entries[index]), "%s", name))

			// Pad unless this is the last entry on the row.
			if next := (col+1)*rows + row; next < len(entries) {
				fmt.Fprint(w, strings.Repeat(" ", colWidths[col]-runewidth.StringWidth(name)))
			}
		}
		fmt.Fprintln(w)
	}
}

const colPadding = 2

// columnize finds the most columns that fit names in column major order
// within screenWidth. It returns the number of rows and the width of each
// column.
func columnize(names []string, screenWidth int) (int, []int) {
	widths := make([]int, len(names))
	for i, name := range names {
		widths[i] = runewidth.StringWidth(name)
	}

	for cols := len(names); cols > 1; cols-- {
		rows := (len(names) + cols - 1) / cols
		usedCols := (len(names) + rows - 1) / rows

		colWidths := make([]int, usedCols)
		for i, w := range widths {
			if w > colWidths[i/rows] {
				colWidths[i/rows] = w
			}
		}

		total := (usedCols - 1) * colPadding
		for _, w := range colWidths {
			total += w
		}
		if total <= screenWidth {
			return rows, colWidths
		}
	}

	maxWidth := 0
	for _, w := range widths {
		maxWidth = max(maxWidth, w)
	}
	return len(names), []int{maxWidth}
}

type LsColorTest struct {
	color *fcolor.Color
	test  func(fileInfo os.FileInfo) bool
}

// Color listing comes from: https://askubuntu.com/a/884513
var dircolors = []LsColorTest{
	// Directories are bold blue.
	{color: ColorBoldBlue, test: os.FileInfo.IsDir},
	// Symlinks are bold cyan.
	{color: ColorBoldCyan, test: func(fi os.FileInfo) bool {
		return fi.Mode()&fs.ModeSymlink > 0
	}},
	// Yellow with black background pipe, block device, char device.
	{color: forced(fcolor.FgYellow, fcolor.BgBlack, fcolor.Bold), test: func(fi os.FileInfo) bool {
		return fi.Mode()&(fs.ModeDevice|fs.ModeNamedPipe|fs.ModeSocket|fs.ModeCharDevice) > 0
	}},
	// Executables are bold green.
	{color: ColorBoldGreen, test: func(fi os.FileInfo) bool {
		return fi.Mode().Perm()&0111 > 0
	}},
	// Archives are bold red.
	{color: ColorBoldRed, test: func(fi os.FileInfo) bool {
		return archiveExts[strings.TrimPrefix(path.Ext(fi.Name()), ".")]
	}},
}

var archiveExts = map[string]bool{
	"tar": true,
	"tgz": true,
	"zip": true,
	"gz":  true,
	"bz2": true,
	"bz":  true,
	"tbz": true,
	"deb": true,
	"rpm": true,
	"jar": true,
	"war": true,
	"rar": true,
}

var plainColor = forced(fcolor.Reset)

func Dircolor(fileInfo os.FileInfo) *fcolor.Color {
	for _, dc := range dircolors {
		if dc.test(fileInfo) {
			return dc.color
		}
	}

	return plainColor
}

var _ vos.ProcessFunc = Ls

func init() {
	mustAddCmd("ls", Ls)
}
