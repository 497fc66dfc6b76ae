package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		Name:    "Anna Schmidt",
		Email:   "anna@example.de",
		Message: "Wir brauchen eine neue Website.",
	}
}

func TestValidate(t *testing.T) {
	t.Run("合法表单", func(t *testing.T) {
		assert.NoError(t, validForm().Validate())
	})

	t.Run("必填字段", func(t *testing.T) {
		err := Form{Company: "ACME"}.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, map[Field]string{
			FieldName:    ErrKeyRequired,
			FieldEmail:   ErrKeyRequired,
			FieldMessage: ErrKeyRequired,
		}, verr.Fields)
	})

	t.Run("邮箱格式", func(t *testing.T) {
		tests := []struct {
			name  string
			email string
			valid bool
		}{
			{"普通地址", "anna@example.de", true},
			{"大写和加号", "ANNA.S+web@Example.CO.UK", true},
			{"缺少顶级域", "anna@example", false},
			{"缺少 @", "anna.example.de", false},
			{"顶级域过短", "anna@example.d", false},
			{"包含空格", "an na@example.de", false},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := validForm()
				f.Email = tt.email
				err := f.Validate()
				if tt.valid {
					assert.NoError(t, err)
					return
				}
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, ErrKeyInvalidEmail, verr.Fields[FieldEmail])
			})
		}
	})
}

func TestSanitize(t *testing.T) {
	f := Form{
		Name:    "  <b>Anna</b> ",
		Message: `Hallo <script>alert("x")</script>Welt`,
	}.Sanitize()
	assert.Equal(t, "Anna", f.Name)
	assert.Equal(t, "Hallo Welt", f.Message)
}

func TestControllerSubmit(t *testing.T) {
	t.Run("成功后清空表单", func(t *testing.T) {
		var got Form
		c := NewController(5*time.Millisecond, SenderFunc(func(_ context.Context, f Form) error {
			got = f
			return nil
		}))
		for field, value := range map[Field]string{
			FieldName: "Anna", FieldEmail: "anna@example.de", FieldMessage: "Hallo", FieldBudget: "5k",
		} {
			c.Set(field, value)
		}
		assert.Equal(t, StatusIdle, c.Status())

		require.NoError(t, c.Submit(context.Background()))
		assert.Equal(t, StatusSuccess, c.Status())
		assert.Equal(t, Form{}, c.Values())
		assert.Equal(t, "5k", got.Budget)
	})

	t.Run("校验失败保持状态", func(t *testing.T) {
		c := NewController(0, nil)
		c.Set(FieldName, "Anna")
		err := c.Submit(context.Background())
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Equal(t, StatusIdle, c.Status())
		assert.Equal(t, ErrKeyRequired, c.FieldError(FieldEmail))

		c.Set(FieldEmail, "anna@example.de")
		assert.Empty(t, c.FieldError(FieldEmail))
		assert.Equal(t, "Anna", c.Values().Name)
	})

	t.Run("发送失败", func(t *testing.T) {
		boom := errors.New("smtp down")
		c := NewController(0, SenderFunc(func(context.Context, Form) error { return boom }))
		for _, field := range []Field{FieldName, FieldEmail, FieldMessage} {
			c.Set(field, validForm().Get(field))
		}
		assert.ErrorIs(t, c.Submit(context.Background()), boom)
		assert.Equal(t, StatusError, c.Status())
		assert.Equal(t, "Anna Schmidt", c.Values().Name, "发送失败时保留表单")
	})

	t.Run("已取消", func(t *testing.T) {
		c := NewController(time.Hour, nil)
		for _, field := range []Field{FieldName, FieldEmail, FieldMessage} {
			c.Set(field, validForm().Get(field))
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, c.Submit(ctx), context.Canceled)
		assert.Equal(t, StatusError, c.Status())
	})

	t.Run("提交中拒绝重复提交", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		c := NewController(0, SenderFunc(func(context.Context, Form) error {
			close(started)
			<-release
			return nil
		}))
		for _, field := range []Field{FieldName, FieldEmail, FieldMessage} {
			c.Set(field, validForm().Get(field))
		}

		done := make(chan error, 1)
		go func() { done <- c.Submit(context.Background()) }()
		<-started
		assert.Equal(t, StatusSubmitting, c.Status())
		assert.ErrorIs(t, c.Submit(context.Background()), ErrBusy)

		close(release)
		assert.NoError(t, <-done)
		assert.Equal(t, StatusSuccess, c.Status())
	})
}
