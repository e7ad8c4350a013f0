package widgets

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
	"strings"

	"github.com/gdamore/tcell"
	"github.com/rivo/tview"
	"github.com/stephane-martin/sftpsh/params"
)

func t(s string) string {
	return strings.TrimSpace(s)
}

// Form collects the connection parameters that were not given on the command
// line. It returns a CLIContext backed by the form fields.
func Form(c params.CLIContext) (params.CLIContext, error) {
	app := tview.NewApplication()

	form := tview.NewForm()
	form.SetButtonsAlign(tview.AlignCenter)
	form.SetBorder(true)
	form.SetTitle(" Enter connection parameters ")
	form.SetButtonBackgroundColor(tcell.ColorDarkBlue)
	form.SetButtonTextColor(tcell.ColorWhite)
	form.SetCancelFunc(func() { app.Stop() })

	addInputField := func(label, value string, fieldWidth int, accept func(textToCheck string, lastChar rune) bool) *tview.InputField {
		field := tview.NewInputField().
			SetLabel(label).
			SetText(value).
			SetFieldWidth(fieldWidth).
			SetAcceptanceFunc(accept)
		form.AddFormItem(field)
		return field
	}

	addPasswordField := func(label string) *tview.InputField {
		field := tview.NewInputField().
			SetLabel(label).
			SetFieldWidth(32).
			SetMaskCharacter('*')
		form.AddFormItem(field)
		return field
	}

	addCheckBox := func(label string, checked bool) *tview.Checkbox {
		field := tview.NewCheckbox().
			SetLabel(label).
			SetChecked(checked)
		form.AddFormItem(field)
		return field
	}

	login := c.SSHLogin()
	if login == "" {
		u, err := user.Current()
		if err == nil {
			login = u.Username
		}
	}

	ctx := new(formContext)
	ctx.sshHostField = addInputField("Server hostname", c.SSHHost(), 40, nil)
	ctx.sshPortField = addInputField("SSH port", fmt.Sprintf("%d", c.SSHPort()), 5, tview.InputFieldInteger)
	ctx.sshLoginField = addInputField("Username", login, 40, nil)
	ctx.sshPasswordField = addPasswordField("Password")
	ctx.insecureField = addCheckBox("Do not check host key", c.SSHInsecure())

	var confirm bool

	form.AddButton("Confirm ✓", func() {
		if t(ctx.sshHostField.GetText()) == "" {
			app.SetFocus(ctx.sshHostField)
			return
		}
		if t(ctx.sshPortField.GetText()) == "" {
			app.SetFocus(ctx.sshPortField)
			return
		}
		if t(ctx.sshLoginField.GetText()) == "" {
			app.SetFocus(ctx.sshLoginField)
			return
		}
		confirm = true
		app.Stop()
	})
	form.AddButton("Cancel 🗙", func() {
		app.Stop()
	})

	flex := tview.NewFlex()
	flex.AddItem(tview.NewBox(), 0, 1, false)
	flex.AddItem(form, 80, 0, true)
	flex.AddItem(tview.NewBox(), 0, 1, false)
	err := app.SetRoot(flex, true).Run()
	if err != nil {
		return nil, err
	}
	if !confirm {
		return nil, errors.New("canceled")
	}
	return ctx, nil
}

type formContext struct {
	sshHostField     *tview.InputField
	sshPortField     *tview.InputField
	sshLoginField    *tview.InputField
	sshPasswordField *tview.InputField
	insecureField    *tview.Checkbox
}

func (ctx *formContext) SSHHost() string {
	return t(ctx.sshHostField.GetText())
}

func (ctx *formContext) SSHLogin() string {
	return t(ctx.sshLoginField.GetText())
}

func (ctx *formContext) SSHPassword() string {
	return ctx.sshPasswordField.GetText()
}

func (ctx *formContext) SSHPort() int {
	port := t(ctx.sshPortField.GetText())
	p, _ := strconv.ParseInt(port, 10, 32)
	return int(p)
}

func (ctx *formContext) SSHInsecure() bool {
	return ctx.insecureField.IsChecked()
}
