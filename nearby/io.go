package nearby

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/combsearch/internal/ioscan"
)

// Run reads a header, the topic and question populations, and a stream of
// queries, writing one answer line per query.
func Run(in io.Reader, out io.Writer) error {
	sc := ioscan.New(in)

	header, ok := sc.Line()
	if !ok {
		return fmt.Errorf("%w: missing header", ErrMalformedHeader)
	}
	numTopics, numQuestions, numQueries, err := parseHeader(header)
	if err != nil {
		return err
	}

	topics := make([]Topic, 0, numTopics)
	for i := 0; i < numTopics; i++ {
		line, ok := sc.Line()
		if !ok {
			return fmt.Errorf("%w: expected %d topics, got %d", ErrMalformedTopic, numTopics, i)
		}
		t, err := parseTopic(line)
		if err != nil {
			return err
		}
		topics = append(topics, t)
	}

	questions := make([]Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		line, ok := sc.Line()
		if !ok {
			return fmt.Errorf("%w: expected %d questions, got %d", ErrMalformedQuestion, numQuestions, i)
		}
		q, err := parseQuestion(line)
		if err != nil {
			return err
		}
		questions = append(questions, q)
	}

	engine := Build(topics, questions)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for i := 0; i < numQueries; i++ {
		line, ok := sc.Line()
		if !ok {
			return fmt.Errorf("%w: expected %d queries, got %d", ErrMalformedQuery, numQueries, i)
		}
		kind, k, x, y, err := parseQuery(line)
		if err != nil {
			return err
		}

		var result []int64
		switch kind {
		case "t", "T":
			result = engine.QueryTopics(k, x, y)
		case "q", "Q":
			result = engine.QueryQuestions(k, x, y)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownQueryType, kind)
		}

		if err := writeAnswer(writer, result); err != nil {
			return fmt.Errorf("nearby: writing output: %w", err)
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("nearby: reading input: %w", err)
	}
	return writer.Flush()
}

func parseHeader(line string) (topics, questions, queries int, err error) {
	fields := ioscan.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	topics, err = ioscan.Int(fields[0], "T")
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	questions, err = ioscan.Int(fields[1], "Q")
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	queries, err = ioscan.Int(fields[2], "N")
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return topics, questions, queries, nil
}

func parseTopic(line string) (Topic, error) {
	fields := ioscan.Fields(line)
	if len(fields) != 3 {
		return Topic{}, fmt.Errorf("%w: %q", ErrMalformedTopic, line)
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Topic{}, fmt.Errorf("%w: bad id: %v", ErrMalformedTopic, err)
	}
	x, err := ioscan.Float(fields[1], "x")
	if err != nil {
		return Topic{}, fmt.Errorf("%w: %v", ErrMalformedTopic, err)
	}
	y, err := ioscan.Float(fields[2], "y")
	if err != nil {
		return Topic{}, fmt.Errorf("%w: %v", ErrMalformedTopic, err)
	}
	return Topic{ID: id, X: x, Y: y}, nil
}

func parseQuestion(line string) (Question, error) {
	fields := ioscan.Fields(line)
	if len(fields) < 2 {
		return Question{}, fmt.Errorf("%w: %q", ErrMalformedQuestion, line)
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Question{}, fmt.Errorf("%w: bad id: %v", ErrMalformedQuestion, err)
	}
	n, err := ioscan.Int(fields[1], "Qn")
	if err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrMalformedQuestion, err)
	}
	if len(fields) != 2+n {
		return Question{}, fmt.Errorf("%w: expected %d topic ids, got %d", ErrMalformedQuestion, n, len(fields)-2)
	}
	topicIDs := make([]int64, 0, n)
	for _, f := range fields[2:] {
		tid, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Question{}, fmt.Errorf("%w: bad topic id: %v", ErrMalformedQuestion, err)
		}
		topicIDs = append(topicIDs, tid)
	}
	return Question{ID: id, Topics: topicIDs}, nil
}

func parseQuery(line string) (kind string, k int, x, y float64, err error) {
	fields := ioscan.Fields(line)
	if len(fields) != 4 {
		return "", 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedQuery, line)
	}
	k, err = ioscan.Int(fields[1], "k")
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
	}
	x, err = ioscan.Float(fields[2], "x")
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
	}
	y, err = ioscan.Float(fields[3], "y")
	if err != nil {
		return "", 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
	}
	return fields[0], k, x, y, nil
}

func writeAnswer(w *bufio.Writer, ids []int64) error {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}
