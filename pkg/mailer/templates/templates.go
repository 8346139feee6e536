package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

var programConfirmation = template.Must(template.New("program_confirmation").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>Conférence ajoutée à votre programme</h2>
  <p>Bonjour {{.Name}},</p>
  <p>La conférence <strong>{{.Title}}</strong> animée par {{.Speaker}} a bien
  été ajoutée à votre programme personnel.</p>
  <ul>
    <li>Date : {{.Date}}</li>
    <li>Salle : {{.Room}}</li>
    <li>Durée : {{.Duration}} minutes</li>
  </ul>
  <p>À bientôt au salon&nbsp;!</p>
</body>
</html>
`))

// Render renders a known template into subject, text and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "program_confirmation":
		var buf bytes.Buffer
		if err = programConfirmation.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Conférence ajoutée à votre programme"
		text = fmt.Sprintf("La conférence %v a été ajoutée à votre programme (%v, salle %v).",
			data["Title"], data["Date"], data["Room"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
