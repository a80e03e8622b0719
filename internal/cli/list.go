package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/pinboard"
	"github.com/matzehuels/pinboard/pkg/record"
)

func (c *CLI) documentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs"},
		Short:   "List documents",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.session(cmd)
			if err != nil {
				return err
			}
			g := sess.Current()
			out := cmd.OutOrStdout()
			for _, d := range g.DocumentNodes() {
				printDocument(out, d)
				printDetail(out, "%s", count{len(g.DocumentAnnotations(d)), "annotation"})
			}
			printStats(out, count{len(g.DocumentNodes()), "document"})
			return nil
		},
	}
}

func (c *CLI) annotationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "annotations",
		Short: "List annotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.session(cmd)
			if err != nil {
				return err
			}
			g := sess.Current()
			out := cmd.OutOrStdout()
			for _, a := range g.AnnotationNodes() {
				printAnnotation(out, a)
				for _, d := range g.AnnotationDocuments(a) {
					printDetail(out, "in %s (%s)", d.Name(), d.ID())
				}
			}
			printStats(out, count{len(g.AnnotationNodes()), "annotation"})
			return nil
		},
	}
}

func (c *CLI) entitiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := c.session(cmd)
			if err != nil {
				return err
			}
			g := sess.Current()
			out := cmd.OutOrStdout()
			for _, e := range g.EntityNodes() {
				printEntity(out, e)
				printDetail(out, "%s", count{len(g.EntityAnnotations(e)), "mention"})
			}
			printStats(out, count{len(g.EntityNodes()), "entity"})
			return nil
		},
	}
}

func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <document-id>",
		Short: "Show a document with its annotations and the entities they mention",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			sess, err := c.session(cmd)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var ids []string
			for _, d := range sess.Current().DocumentNodes() {
				ids = append(ids, d.ID()+"\t"+d.Name())
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := c.session(cmd)
			if err != nil {
				return err
			}
			return showDocument(cmd.OutOrStdout(), sess.Current(), args[0])
		},
	}
}

func showDocument(out io.Writer, g pinboard.Graph, id string) error {
	doc, ok := g.FindDocByID(id)
	if !ok {
		return errors.New(errors.ErrCodeDocumentNotFound, "no document with id %q", id)
	}

	fmt.Fprintln(out, StyleTitle.Render(doc.Name()))
	printKeyValue(out, "id", doc.ID())
	if doc.URL() != "" {
		printKeyValue(out, "url", StyleLink.Render(doc.URL()))
	}
	fmt.Fprintln(out)

	anns := g.DocumentAnnotations(doc)
	if len(anns) == 0 {
		printInfo(out, "%s", StyleDim.Render("no annotations"))
		return nil
	}
	for _, a := range anns {
		printAnnotation(out, a)
		for _, e := range g.AnnotationEntities(a) {
			fmt.Fprintln(out, "    "+StyleDim.Render(iconArrow)+" "+styleEntity.Render(e.FullName()))
		}
	}
	return nil
}

func printDocument(w io.Writer, d record.Document) {
	line := styleDocument.Render(d.Name()) + " " + StyleDim.Render(d.ID())
	if d.URL() != "" {
		line += "\n    " + StyleLink.Render(d.URL())
	}
	printInfo(w, "%s", line)
}

func printAnnotation(w io.Writer, a record.Annotation) {
	printInfo(w, "%s %s", styleAnnotation.Render(strconv.Quote(a.Quote())), StyleDim.Render(a.ID()))
	if note, ok := a.Content().Get(); ok {
		printDetail(w, "note: %s", note)
	}
	if pages := a.Pages(); len(pages) > 0 {
		labels := make([]string, len(pages))
		for i, p := range pages {
			labels[i] = strconv.Itoa(p + 1)
		}
		printDetail(w, "p. %s", strings.Join(labels, ", "))
	}
}

func printEntity(w io.Writer, e record.Entity) {
	printInfo(w, "%s %s", styleEntity.Render(e.FullName()), StyleDim.Render(e.ID()))
	if pic, ok := e.PictureURL().Get(); ok {
		printDetail(w, "%s", pic)
	}
}
