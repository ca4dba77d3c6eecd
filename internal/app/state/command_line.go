package state

// CommandLine is the immutable text buffer shown while entering a command.
type CommandLine struct {
	prompt  string
	buffer  []rune
	message string
}

// NewCommandLine returns an empty buffer behind prompt.
func NewCommandLine(prompt string) CommandLine {
	return CommandLine{prompt: prompt}
}

// Prompt returns the fixed prompt.
func (c CommandLine) Prompt() string { return c.prompt }

// Buffer returns the typed text.
func (c CommandLine) Buffer() string { return string(c.buffer) }

// Message returns the transient message replacing the buffer, if any.
func (c CommandLine) Message() string { return c.message }

// Text is what the command line displays.
func (c CommandLine) Text() string {
	if c.message != "" {
		return c.message
	}
	return c.prompt + string(c.buffer)
}

// WriteChar appends r.
func (c CommandLine) WriteChar(r rune) CommandLine {
	buf := make([]rune, len(c.buffer), len(c.buffer)+1)
	copy(buf, c.buffer)
	return CommandLine{prompt: c.prompt, buffer: append(buf, r), message: c.message}
}

// DeleteChar removes the last character. An empty buffer is left as is.
func (c CommandLine) DeleteChar() CommandLine {
	if len(c.buffer) == 0 {
		return c
	}
	return CommandLine{prompt: c.prompt, buffer: c.buffer[:len(c.buffer)-1:len(c.buffer)-1], message: c.message}
}

// WithMessage shows msg in place of the buffer until cleared.
func (c CommandLine) WithMessage(msg string) CommandLine {
	return CommandLine{prompt: c.prompt, buffer: c.buffer, message: msg}
}

// Clear empties the buffer and drops any message.
func (c CommandLine) Clear() CommandLine {
	return NewCommandLine(c.prompt)
}
