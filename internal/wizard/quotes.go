package wizard

var motivationalQuotes = []string{
	"The beautiful thing about learning is that no one can take it away from you. - B.B. King",
	"Education is the passport to the future. - Malcolm X",
	"Live as if you were to die tomorrow. Learn as if you were to live forever. - Mahatma Gandhi",
	"The expert in anything was once a beginner. - Helen Hayes",
	"It always seems impossible until it's done. - Nelson Mandela",
	"An investment in knowledge pays the best interest. - Benjamin Franklin",
	"Tell me and I forget. Teach me and I remember. Involve me and I learn.",
	"Success is the sum of small efforts, repeated day in and day out. - Robert Collier",
}

// QuoteCount returns the number of loading quotes.
func QuoteCount() int { return len(motivationalQuotes) }

func quoteAt(i int) string {
	if i < 0 || i >= len(motivationalQuotes) {
		return motivationalQuotes[0]
	}
	return motivationalQuotes[i]
}
