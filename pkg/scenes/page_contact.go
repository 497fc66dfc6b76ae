package scenes

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/contact"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/systems"
	"github.com/gonewx/sitemotion/pkg/ui"
)

// 表单布局（相对表单元素）
const (
	formPadding     = 24.0
	formFieldHeight = 52.0
	formFieldGap    = 12.0
	submitWidth     = 240.0
	// submitTimeout 单次提交的最长等待
	submitTimeout = 30 * time.Second
)

var fieldLabels = map[ui.Locale]map[contact.Field]string{
	ui.LocaleDE: {
		contact.FieldName:    "Name *",
		contact.FieldEmail:   "E-Mail *",
		contact.FieldCompany: "Unternehmen",
		contact.FieldPhone:   "Telefon",
		contact.FieldBudget:  "Budget",
		contact.FieldMessage: "Nachricht *",
	},
	ui.LocaleEN: {
		contact.FieldName:    "Name *",
		contact.FieldEmail:   "Email *",
		contact.FieldCompany: "Company",
		contact.FieldPhone:   "Phone",
		contact.FieldBudget:  "Budget",
		contact.FieldMessage: "Message *",
	},
}

var statusLabels = map[ui.Locale]map[contact.Status]string{
	ui.LocaleDE: {
		contact.StatusIdle:       "Nachricht senden",
		contact.StatusSubmitting: "Wird gesendet...",
		contact.StatusSuccess:    "Vielen Dank! Wir melden uns bald.",
		contact.StatusError:      "Fehler, bitte erneut versuchen.",
	},
	ui.LocaleEN: {
		contact.StatusIdle:       "Send message",
		contact.StatusSubmitting: "Sending...",
		contact.StatusSuccess:    "Thank you! We will be in touch.",
		contact.StatusError:      "Something went wrong, please retry.",
	},
}

var errorLabels = map[ui.Locale]map[string]string{
	ui.LocaleDE: {
		contact.ErrKeyRequired:     "Pflichtfeld",
		contact.ErrKeyInvalidEmail: "Ungültige E-Mail-Adresse",
	},
	ui.LocaleEN: {
		contact.ErrKeyRequired:     "Required",
		contact.ErrKeyInvalidEmail: "Invalid email address",
	},
}

// formView 联系表单：字段元素、提交按钮和后台提交
type formView struct {
	scene  *PageScene
	ctrl   *contact.Controller
	fields []*dom.Element
	submit *dom.Element
	focus  int

	ctx      context.Context
	cancelFn context.CancelFunc
}

func newFormView(s *PageScene, sv *sectionView, sender contact.Sender) *formView {
	delay := time.Duration(s.site.Contact.SubmitDelay * float64(time.Second))
	f := &formView{
		scene: s,
		ctrl:  contact.NewController(delay, sender),
	}

	formEl, ok := sv.named["form"]
	if !ok {
		top := sv.el.Box().Y
		formEl = s.doc.CreateChild(sv.el, sv.cfg.ID+":form", dom.Rect{
			X: config.SectionPaddingX, Y: top + contentTopNoTitle, Width: 700, Height: 560,
		})
		sv.named["form"] = formEl
	}
	box := formEl.Box()

	for i, field := range contact.Fields {
		el := s.doc.CreateChild(formEl, "field:"+string(field), dom.Rect{
			X:      box.X + formPadding,
			Y:      box.Y + formPadding + float64(i)*(formFieldHeight+formFieldGap),
			Width:  box.Width - 2*formPadding,
			Height: formFieldHeight,
		}, "form-field")
		f.fields = append(f.fields, el)
	}
	f.submitEl(formEl, box)
	f.refresh()
	return f
}

func (f *formView) submitEl(formEl *dom.Element, box dom.Rect) {
	n := float64(len(contact.Fields))
	f.submit = f.scene.doc.CreateChild(formEl, "submit", dom.Rect{
		X:      box.X + formPadding,
		Y:      box.Y + formPadding + n*(formFieldHeight+formFieldGap),
		Width:  submitWidth,
		Height: formFieldHeight,
	}, systems.ClassButton)
}

func (f *formView) label(m map[ui.Locale]map[contact.Field]string, field contact.Field) string {
	if l, ok := m[f.scene.locale]; ok {
		return l[field]
	}
	return m[ui.DefaultLocale][field]
}

// refresh 把表单状态写回元素文本
func (f *formView) refresh() {
	values := f.ctrl.Values()
	locale := f.scene.locale
	if _, ok := statusLabels[locale]; !ok {
		locale = ui.DefaultLocale
	}

	for i, field := range contact.Fields {
		text := f.label(fieldLabels, field) + ": " + values.Get(field)
		if i == f.focus {
			text += "_"
		}
		if key := f.ctrl.FieldError(field); key != "" {
			text += "   (" + errorLabels[locale][key] + ")"
		}
		f.fields[i].SetText(text)
	}
	f.submit.SetText(statusLabels[locale][f.ctrl.Status()])
}

// start 在后台提交，页面卸载时取消
func (f *formView) start() {
	if f.ctx == nil {
		f.ctx, f.cancelFn = context.WithCancel(context.Background())
	}
	ctx := f.ctx
	go func() {
		ctx, cancel := context.WithTimeout(ctx, submitTimeout)
		defer cancel()
		err := f.ctrl.Submit(ctx)
		switch {
		case err == nil:
			log.Printf("[ContactForm] 提交成功")
		case errors.Is(err, contact.ErrInvalid):
			log.Printf("[ContactForm] 表单无效: %v", err)
		default:
			log.Printf("[ContactForm] 提交失败: %v", err)
		}
	}()
}

func (f *formView) cancel() {
	if f.cancelFn != nil {
		f.cancelFn()
	}
	f.ctx, f.cancelFn = nil, nil
}

func (f *formView) click(x, y float64) bool {
	for i, el := range f.fields {
		if el.BoundingClientRect().Contains(x, y) {
			f.focus = i
			return true
		}
	}
	if f.submit.BoundingClientRect().Contains(x, y) {
		f.start()
		return true
	}
	return false
}
