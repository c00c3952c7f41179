package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractElementsJSTS(t *testing.T) {
	content := `
export function fetchUser(id) {
	return id;
}

export const formatDate = (d) => d.toISOString();

export class UserRepository {
}

const apiBaseUrl = "https://api.example.com";
`
	elems := ExtractElements(".js", content)
	assert.Contains(t, elems.Functions, "fetchUser")
	assert.Contains(t, elems.Functions, "formatDate")
	assert.Contains(t, elems.Classes, "UserRepository")
	assert.Contains(t, elems.Variables, "apiBaseUrl")
	assert.NotContains(t, elems.Variables, "formatDate")
}

func TestExtractElementsPython(t *testing.T) {
	content := `
class Repository:
	pass

def load_config():
	pass

DEFAULT_TIMEOUT = 30
`
	elems := ExtractElements(".py", content)
	assert.Contains(t, elems.Classes, "Repository")
	assert.Contains(t, elems.Functions, "load_config")
	assert.Contains(t, elems.Variables, "DEFAULT_TIMEOUT")
}

func TestExtractElementsJavaExcludesControlKeywords(t *testing.T) {
	content := `
public class OrderService {
	private int count;

	public void process() {
		if (count > 0) {
			for (int i = 0; i < count; i++) {
			}
		}
	}
}
`
	elems := ExtractElements(".java", content)
	assert.Contains(t, elems.Classes, "OrderService")
	assert.Contains(t, elems.Functions, "process")
	assert.NotContains(t, elems.Functions, "if")
	assert.NotContains(t, elems.Functions, "for")
}

func TestExtractElementsUnknownExtensionYieldsZeroValue(t *testing.T) {
	elems := ExtractElements(".rs", "fn main() {}")
	assert.Empty(t, elems.Functions)
	assert.Empty(t, elems.Variables)
	assert.Empty(t, elems.Classes)
}
