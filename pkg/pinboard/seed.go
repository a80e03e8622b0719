package pinboard

import "github.com/matzehuels/pinboard/pkg/record"

// Seed returns the startup board: three papers, one annotation on the
// first and one entity mentioned in that annotation. A nil factory uses
// [record.DefaultFactory].
func Seed(f *record.Factory) Graph {
	f = factory(f)

	crdt := f.Document(
		"A Conflict-Free Replicated JSON Datatype",
		"https://arxiv.org/pdf/1608.03960.pdf",
	)
	dag := f.Document(
		"Learning to Optimize DAG Scheduling in HeterogeneousEnvironment",
		"https://arxiv.org/pdf/2103.06980.pdf",
	)
	gas := f.Document(
		"Gas Dynamics in the Galaxy: Total Mass Distribution and the Bar Pattern Speed",
		"https://arxiv.org/pdf/2103.10342.pdf",
	)

	author := f.Annotation([]record.HighlightArea{{
		PageIndex: 0,
		Top:       11.912766849429927,
		Left:      32.409603948810144,
		Width:     14.592785602587151,
		Height:    1.5782854230544756,
	}}, "Martin Kleppmann", record.Some("Paper author"))

	kleppmann := f.Entity("Martin", "Kleppmann", record.Some("https://thispersondoesnotexist.com/image"))

	return Apply(New(),
		AddDocument(dag),
		AddDocument(gas),
		AttachAnnotation(author, crdt),
		AttachEntity(kleppmann, author),
	)
}
