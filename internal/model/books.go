package model

import "strings"

// Testament groups books into Old and New
type Testament string

const (
	OldTestament Testament = "Old"
	NewTestament Testament = "New"
)

// Book is an entry in the canon catalog
type Book struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Testament Testament `json:"testament"`
	Chapters  int       `json:"chapters"`
}

// Books lists the 66-book canon in canonical order
var Books = []Book{
	{"GEN", "Genesis", OldTestament, 50},
	{"EXO", "Exodus", OldTestament, 40},
	{"LEV", "Leviticus", OldTestament, 27},
	{"NUM", "Numbers", OldTestament, 36},
	{"DEU", "Deuteronomy", OldTestament, 34},
	{"JOS", "Joshua", OldTestament, 24},
	{"JDG", "Judges", OldTestament, 21},
	{"RUT", "Ruth", OldTestament, 4},
	{"1SA", "1 Samuel", OldTestament, 31},
	{"2SA", "2 Samuel", OldTestament, 24},
	{"1KI", "1 Kings", OldTestament, 22},
	{"2KI", "2 Kings", OldTestament, 25},
	{"1CH", "1 Chronicles", OldTestament, 29},
	{"2CH", "2 Chronicles", OldTestament, 36},
	{"EZR", "Ezra", OldTestament, 10},
	{"NEH", "Nehemiah", OldTestament, 13},
	{"EST", "Esther", OldTestament, 10},
	{"JOB", "Job", OldTestament, 42},
	{"PSA", "Psalms", OldTestament, 150},
	{"PRO", "Proverbs", OldTestament, 31},
	{"ECC", "Ecclesiastes", OldTestament, 12},
	{"SNG", "Song of Solomon", OldTestament, 8},
	{"ISA", "Isaiah", OldTestament, 66},
	{"JER", "Jeremiah", OldTestament, 52},
	{"LAM", "Lamentations", OldTestament, 5},
	{"EZK", "Ezekiel", OldTestament, 48},
	{"DAN", "Daniel", OldTestament, 12},
	{"HOS", "Hosea", OldTestament, 14},
	{"JOL", "Joel", OldTestament, 3},
	{"AMO", "Amos", OldTestament, 9},
	{"OBA", "Obadiah", OldTestament, 1},
	{"JON", "Jonah", OldTestament, 4},
	{"MIC", "Micah", OldTestament, 7},
	{"NAM", "Nahum", OldTestament, 3},
	{"HAB", "Habakkuk", OldTestament, 3},
	{"ZEP", "Zephaniah", OldTestament, 3},
	{"HAG", "Haggai", OldTestament, 2},
	{"ZEC", "Zechariah", OldTestament, 14},
	{"MAL", "Malachi", OldTestament, 4},
	{"MAT", "Matthew", NewTestament, 28},
	{"MRK", "Mark", NewTestament, 16},
	{"LUK", "Luke", NewTestament, 24},
	{"JHN", "John", NewTestament, 21},
	{"ACT", "Acts", NewTestament, 28},
	{"ROM", "Romans", NewTestament, 16},
	{"1CO", "1 Corinthians", NewTestament, 16},
	{"2CO", "2 Corinthians", NewTestament, 13},
	{"GAL", "Galatians", NewTestament, 6},
	{"EPH", "Ephesians", NewTestament, 6},
	{"PHP", "Philippians", NewTestament, 4},
	{"COL", "Colossians", NewTestament, 4},
	{"1TH", "1 Thessalonians", NewTestament, 5},
	{"2TH", "2 Thessalonians", NewTestament, 3},
	{"1TI", "1 Timothy", NewTestament, 6},
	{"2TI", "2 Timothy", NewTestament, 4},
	{"TIT", "Titus", NewTestament, 3},
	{"PHM", "Philemon", NewTestament, 1},
	{"HEB", "Hebrews", NewTestament, 13},
	{"JAS", "James", NewTestament, 5},
	{"1PE", "1 Peter", NewTestament, 5},
	{"2PE", "2 Peter", NewTestament, 3},
	{"1JN", "1 John", NewTestament, 5},
	{"2JN", "2 John", NewTestament, 1},
	{"3JN", "3 John", NewTestament, 1},
	{"JUD", "Jude", NewTestament, 1},
	{"REV", "Revelation", NewTestament, 22},
}

var bookAliases = map[string]string{
	"psalm":         "Psalms",
	"song of songs": "Song of Solomon",
	"songs":         "Song of Solomon",
	"revelations":   "Revelation",
}

var bookIndex = func() map[string]int {
	idx := make(map[string]int, len(Books))
	for i, b := range Books {
		idx[strings.ToLower(b.Name)] = i
	}
	return idx
}()

// LookupBook finds a book by name, case-insensitively and with common aliases
func LookupBook(name string) (Book, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if alias, ok := bookAliases[key]; ok {
		key = strings.ToLower(alias)
	}
	i, ok := bookIndex[key]
	if !ok {
		return Book{}, false
	}
	return Books[i], true
}

// SuggestBooks returns up to limit books, in canonical order, whose name
// contains query case-insensitively. Queries shorter than two characters
// suggest nothing.
func SuggestBooks(query string, limit int) []Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 || limit <= 0 {
		return nil
	}

	var out []Book
	for _, b := range Books {
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Position is a (book, chapter) location in the canon
type Position struct {
	Book    string
	Chapter int
}

// Navigate returns the chapters before and after the given one, crossing
// book boundaries. ok is false at either end of the canon.
func Navigate(book string, chapter int) (prev Position, hasPrev bool, next Position, hasNext bool) {
	b, found := LookupBook(book)
	if !found || chapter < 1 || chapter > b.Chapters {
		return
	}
	i := bookIndex[strings.ToLower(b.Name)]

	switch {
	case chapter > 1:
		prev, hasPrev = Position{b.Name, chapter - 1}, true
	case i > 0:
		p := Books[i-1]
		prev, hasPrev = Position{p.Name, p.Chapters}, true
	}

	switch {
	case chapter < b.Chapters:
		next, hasNext = Position{b.Name, chapter + 1}, true
	case i < len(Books)-1:
		next, hasNext = Position{Books[i+1].Name, 1}, true
	}

	return
}
