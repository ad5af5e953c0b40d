package controller

import (
	"strconv"
	"strings"
)

// splitTokensQuoted разбивает строку по пробелам, сохраняя фразы в двойных
// кавычках как один токен.
func splitTokensQuoted(line string) []string {
	var tokens []string
	var cur strings.Builder
	inQuotes := false
	hasToken := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case !inQuotes && (r == ' ' || r == '\t'):
			if hasToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				hasToken = false
			}
		default:
			cur.WriteRune(r)
			hasToken = true
		}
	}
	if hasToken {
		tokens = append(tokens, cur.String())
	}

	return tokens
}

// parseFlags собирает пары "--флаг значение". Флаг без значения получает
// пустую строку.
func parseFlags(tokens []string) map[string]string {
	args := make(map[string]string)
	for i := 0; i < len(tokens); i++ {
		if !strings.HasPrefix(tokens[i], "--") {
			continue
		}
		key := tokens[i]
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
			args[key] = tokens[i+1]
			i++
		} else {
			args[key] = ""
		}
	}
	return args
}

// atoiFlag достаёт числовой флаг из разобранных аргументов.
func atoiFlag(args map[string]string, key string) (int, bool) {
	v, ok := args[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseIDList разбирает список ID вида "2,5, 7".
func parseIDList(s string) ([]int, bool) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
