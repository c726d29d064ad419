// Package seed lee y escribe bancos de preguntas en XML.
//
//	<trivia>
//	  <category id="1" type="Science">
//	    <question difficulty="4">
//	      <text>What is the heaviest organ in the human body?</text>
//	      <answer>The Liver</answer>
//	    </question>
//	  </category>
//	</trivia>
//
// Los archivos declarados como ISO-8859-1 se decodifican a UTF-8.
package seed

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/trivia-api/internal/domain/entity"
)

const (
	tagRoot     = "trivia"
	tagCategory = "category"
	tagQuestion = "question"
	tagText     = "text"
	tagAnswer   = "answer"
)

// LoadFile abre y parsea un banco desde disco.
func LoadFile(path string) (entity.QuestionBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return entity.QuestionBank{}, fmt.Errorf("abrir banco: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse lee un banco de preguntas. Las preguntas heredan el id de su <category>.
func Parse(r io.Reader) (entity.QuestionBank, error) {
	var bank entity.QuestionBank

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return bank, fmt.Errorf("parsear banco: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != tagRoot {
		return bank, fmt.Errorf("parsear banco: se esperaba <%s>", tagRoot)
	}

	seen := map[int64]bool{}
	for _, catEl := range root.SelectElements(tagCategory) {
		id, err := strconv.ParseInt(strings.TrimSpace(catEl.SelectAttrValue("id", "")), 10, 64)
		if err != nil || id <= 0 {
			return bank, fmt.Errorf("parsear banco: category id inválido %q", catEl.SelectAttrValue("id", ""))
		}
		if seen[id] {
			return bank, fmt.Errorf("parsear banco: category %d duplicada", id)
		}
		seen[id] = true
		typ := strings.TrimSpace(catEl.SelectAttrValue("type", ""))
		if typ == "" {
			return bank, fmt.Errorf("parsear banco: category %d sin type", id)
		}
		bank.Categories = append(bank.Categories, entity.Category{ID: id, Type: typ})

		for _, qEl := range catEl.SelectElements(tagQuestion) {
			q, err := parseQuestion(qEl, id)
			if err != nil {
				return bank, err
			}
			bank.Questions = append(bank.Questions, q)
		}
	}
	return bank, nil
}

func parseQuestion(el *etree.Element, categoryID int64) (entity.Question, error) {
	text := childText(el, tagText)
	answer := childText(el, tagAnswer)
	if text == "" || answer == "" {
		return entity.Question{}, fmt.Errorf("parsear banco: pregunta sin text/answer en category %d", categoryID)
	}
	diff, err := strconv.Atoi(strings.TrimSpace(el.SelectAttrValue("difficulty", "1")))
	if err != nil {
		return entity.Question{}, fmt.Errorf("parsear banco: difficulty inválida en %q", text)
	}
	return entity.Question{
		Question:   text,
		Answer:     answer,
		Category:   categoryID,
		Difficulty: diff,
	}, nil
}

func childText(el *etree.Element, tag string) string {
	c := el.SelectElement(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text())
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "UTF-8", "":
		return input, nil
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}
}

// Write serializa un banco en UTF-8. Las preguntas se agrupan bajo su categoría;
// las que apuntan a una categoría ausente se omiten.
func Write(w io.Writer, bank entity.QuestionBank) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(tagRoot)

	byCategory := make(map[int64]*etree.Element, len(bank.Categories))
	for _, c := range bank.Categories {
		el := root.CreateElement(tagCategory)
		el.CreateAttr("id", strconv.FormatInt(c.ID, 10))
		el.CreateAttr("type", c.Type)
		byCategory[c.ID] = el
	}
	for _, q := range bank.Questions {
		parent, ok := byCategory[q.Category]
		if !ok {
			continue
		}
		el := parent.CreateElement(tagQuestion)
		el.CreateAttr("difficulty", strconv.Itoa(q.Difficulty))
		el.CreateElement(tagText).SetText(q.Question)
		el.CreateElement(tagAnswer).SetText(q.Answer)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("escribir banco: %w", err)
	}
	return nil
}
