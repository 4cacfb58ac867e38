package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips tags to spaces",
			in:   "<p>Jane Doe</p><p>Head of School</p>",
			want: "Jane Doe Head of School",
		},
		{
			name: "removes script and style blocks",
			in:   `<script type="text/javascript">var x = "<b>";</script><style>.a{}</style><div>Staff</div>`,
			want: "Staff",
		},
		{
			name: "removes navigation footer and header",
			in:   "<header><a>Home</a></header><nav><a>About</a></nav><main>Directory</main><footer>(c) 2024</footer>",
			want: "Directory",
		},
		{
			name: "removes comments",
			in:   "<div>Before<!-- hidden <b>bold</b> -->After</div>",
			want: "BeforeAfter",
		},
		{
			name: "case-insensitive delimiters",
			in:   "<SCRIPT>alert(1)</SCRIPT><Nav>menu</NAV>Body",
			want: "Body",
		},
		{
			name: "non-greedy removes each block separately",
			in:   "<nav>one</nav>keep<nav>two</nav>",
			want: "keep",
		},
		{
			name: "multiline blocks",
			in:   "<style>\nbody {\n color: red;\n}\n</style>\n<p>\n  Dean of\n  Students\n</p>",
			want: "Dean of Students",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Reduce(tc.in))
		})
	}
}

func TestReduce_PageSeparatorSurvives(t *testing.T) {
	in := "<p>Home</p>\n---PAGE_SEPARATOR---\n<p>Staff</p>"

	assert.Equal(t, "Home ---PAGE_SEPARATOR--- Staff", Reduce(in))
}

func TestReduce_Idempotent(t *testing.T) {
	once := Reduce("<div> a <span>b</span>\n\n c </div>")
	assert.Equal(t, once, Reduce(once))
}
