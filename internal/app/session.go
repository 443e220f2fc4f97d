package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vaxq-go/internal/model"
)

const menu = `
Menu:
1. Load requests from file
2. Add a new request
3. Remove a request by ID
4. Edit a request by ID
5. Display all requests
6. Save requests to file
7. Search requests
8. Sort requests
9. Undo
10. Redo
.  Exit
`

// RunSession runs the interactive menu loop until the user exits or input
// ends. When interactive is false (piped input, tests), the menu and prompts
// are suppressed but commands are processed the same way. Command errors are
// printed and the loop continues; only a read failure ends the session early.
func (a *App) RunSession(in io.Reader, out io.Writer, interactive bool) error {
	sc := bufio.NewScanner(in)

	readLine := func(prompt string) (string, bool) {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	for {
		if interactive {
			fmt.Fprint(out, menu)
		}
		choice, ok := readLine("Enter your choice: ")
		if !ok {
			return sc.Err()
		}

		switch choice {
		case "1":
			added, skipped, err := a.LoadData()
			if err != nil {
				fmt.Fprintf(out, "An error occurred: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Loaded %d request(s), skipped %d line(s).\n", added, skipped)

		case "2":
			a.addSession(readLine, out)

		case "3":
			id, ok := readLine("Enter ID to remove: ")
			if !ok {
				return sc.Err()
			}
			if err := a.Remove(id); err != nil {
				fmt.Fprintf(out, "An error occurred: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Request removed.")

		case "4":
			a.editSession(readLine, out)

		case "5":
			displayRequests(out, a.List())

		case "6":
			if err := a.SaveData(); err != nil {
				fmt.Fprintf(out, "An error occurred: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Requests saved to file.")

		case "7":
			query, ok := readLine("Enter search query: ")
			if !ok {
				return sc.Err()
			}
			displayRequests(out, a.Search(query))

		case "8":
			field, ok := readLine("Enter field to sort by (id, name, phone, vaccine, date, start_time, end_time): ")
			if !ok {
				return sc.Err()
			}
			if err := a.Sort(field); err != nil {
				fmt.Fprintf(out, "An error occurred: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Requests sorted.")

		case "9":
			if a.Undo() {
				fmt.Fprintln(out, "Undo completed.")
			} else {
				fmt.Fprintln(out, "Nothing to undo.")
			}

		case "10":
			if a.Redo() {
				fmt.Fprintln(out, "Redo completed.")
			} else {
				fmt.Fprintln(out, "Nothing to redo.")
			}

		case ".", "exit":
			return nil

		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

// fieldPrompts pairs each request field with its session prompt, in wire
// order.
var fieldPrompts = []struct {
	field  string
	prompt string
}{
	{model.FieldID, "Enter ID: "},
	{model.FieldName, "Enter patient name: "},
	{model.FieldPhone, "Enter patient phone: "},
	{model.FieldVaccine, "Enter vaccine: "},
	{model.FieldDate, "Enter date: "},
	{model.FieldStartTime, "Enter start time: "},
	{model.FieldEndTime, "Enter end time: "},
}

// addSession prompts for each field in turn, validating on assignment.
// The first invalid value aborts the add; nothing is committed.
func (a *App) addSession(readLine func(string) (string, bool), out io.Writer) {
	r := model.New()
	for _, fp := range fieldPrompts {
		v, ok := readLine(fp.prompt)
		if !ok {
			return
		}
		if err := r.Set(fp.field, v); err != nil {
			fmt.Fprintf(out, "An error occurred: %v\n", err)
			return
		}
	}
	a.Add(r)
	fmt.Fprintln(out, "Request added.")
}

// editSession prompts for the target id and the new field values. The id of
// the edited request is kept; only the other six fields are replaced.
func (a *App) editSession(readLine func(string) (string, bool), out io.Writer) {
	id, ok := readLine("Enter ID to edit: ")
	if !ok {
		return
	}

	updated := model.New()
	if err := updated.SetID(id); err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return
	}
	for _, fp := range fieldPrompts[1:] {
		v, ok := readLine("New " + strings.TrimPrefix(fp.prompt, "Enter "))
		if !ok {
			return
		}
		if err := updated.Set(fp.field, v); err != nil {
			fmt.Fprintf(out, "An error occurred: %v\n", err)
			return
		}
	}

	if err := a.Edit(id, updated); err != nil {
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Request updated.")
}

// displayRequests prints the records one per line, or the empty notice.
func displayRequests(out io.Writer, requests []*model.Request) {
	if len(requests) == 0 {
		fmt.Fprintln(out, "The collection is empty")
		return
	}
	for _, r := range requests {
		fmt.Fprintln(out, r.String())
	}
}
