package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/formfile"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

func main() {
	formPath := flag.String("form", "", "form file to load (JSON or YAML)")
	openapiPath := flag.String("openapi", "", "OpenAPI document to import a form from")
	operation := flag.String("operation", "", "operation ID to import (with -openapi)")
	storePath := flag.String("store", "", "bbolt database holding saved forms")
	loadID := flag.String("load", "", "form id to load from the store")
	name := flag.String("name", "", "override the form name")
	rendererName := flag.String("renderer", "html", "renderer to use (html, jsx, preview)")
	output := flag.String("output", "", "output file (stdout if empty)")
	list := flag.Bool("list", false, "list saved forms and exit")
	save := flag.Bool("save", false, "save the form to the store before rendering")
	interactive := flag.Bool("interactive", false, "add fields interactively before rendering")
	flag.Parse()

	ctx := context.Background()

	options := []builder.Option{}
	if *storePath != "" {
		backing, err := store.OpenBolt(*storePath)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer backing.Close()
		options = append(options, builder.WithStore(backing))
	}

	doc, seeded, err := seedDocument(ctx, *formPath, *openapiPath, *operation)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}
	if seeded {
		options = append(options, builder.WithDocument(doc))
	}

	session := builder.New(options...)

	if *list {
		listForms(session)
		return
	}

	if *loadID != "" {
		ok, err := session.Load(*loadID)
		if err != nil {
			log.Fatalf("Failed to load form: %v", err)
		}
		if !ok {
			log.Fatalf("Form %q not found in store", *loadID)
		}
	}
	if *name != "" {
		session.Rename(*name)
	}

	if *interactive {
		if err := runInteractive(session); err != nil {
			log.Fatalf("Interactive session failed: %v", err)
		}
	}

	if *save {
		formID, err := session.Save()
		if err != nil {
			log.Fatalf("Failed to save form: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Saved form as %s\n", formID)
	}

	rendered, err := session.Render(ctx, *rendererName)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

// seedDocument resolves a starting document from the form-file or OpenAPI
// flags. The second return reports whether a document was produced; when both
// flags are empty the session starts from scratch.
func seedDocument(ctx context.Context, formPath, openapiPath, operation string) (model.FormDocument, bool, error) {
	switch {
	case formPath != "":
		doc, err := formfile.Load(formPath)
		if err != nil {
			return model.FormDocument{}, false, err
		}
		return doc, true, nil
	case openapiPath != "":
		if operation == "" {
			return model.FormDocument{}, false, fmt.Errorf("-operation is required with -openapi")
		}
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return model.FormDocument{}, false, err
		}
		doc, err := openapi.ImportOperation(ctx, raw, operation)
		if err != nil {
			return model.FormDocument{}, false, err
		}
		return doc, true, nil
	}
	return model.FormDocument{}, false, nil
}

func listForms(session *builder.Session) {
	forms, err := session.Forms()
	if err != nil {
		log.Fatalf("Failed to list forms: %v", err)
	}
	if len(forms) == 0 {
		fmt.Println("No saved forms.")
		return
	}

	ids := make([]string, 0, len(forms))
	for id := range forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		doc := forms[id]
		fmt.Printf("%s\t%s\t%d field(s)\n", id, doc.Name, len(doc.Fields))
	}
}
