// Package frameschema compiles declarative framework question content into JSON
// Schema documents used to validate submitted answers.
//
// Design policy:
//   - Keep only shared vocabulary in the root package (Request, the error taxonomy).
//   - Put the question model under question/, schema documents and merging under
//     jsonschema/, the compiler under compiler/, the schema table under config/,
//     content loading under content/, answer checking under validate/, batch
//     orchestration under generate/ and the CLI under cmd/frameschema.
//   - Compilation is pure: identical content yields byte-identical schemas.
//
// Typical usage:
//
//	cfg, err := config.Default()
//	g := generate.New(content.NewFileProvider(root, cfg))
//	req, _ := cfg.Find("services", "g-cloud-7", "scs")
//	s, err := g.Generate(ctx, req)
//	b, err := jsonschema.Encode(s)
package frameschema
