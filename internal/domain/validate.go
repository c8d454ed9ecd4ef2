package domain

import "fmt"

// Validate checks a Document for structural defects before conversion.
// Conversion itself has no error path; callers are expected to validate
// first and reject invalid documents up front.
func Validate(doc *Document) error {
	if doc.FormatVersion != 1 {
		return &ModelError{
			Kind:   InvalidRoot,
			Detail: fmt.Sprintf("unsupported format version %d, want 1", doc.FormatVersion),
		}
	}
	for i, b := range doc.Blocks {
		if err := validateBlock(b, KindParagraph, fmt.Sprintf("blocks[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

// validateBlock walks one block. parent is the kind of the enclosing
// container (the root is treated as a paragraph-like container: anything but
// a list).
func validateBlock(b Block, parent BlockKind, path string) error {
	switch b.Kind {
	case KindListItem:
		if parent != KindBulletList && parent != KindOrderedList {
			return &ModelError{
				Kind:   OrphanListItem,
				Path:   path,
				Detail: fmt.Sprintf("listItem outside a list container (parent %s)", parent),
			}
		}
	case KindTaskItem:
		if parent != KindTaskList {
			return &ModelError{
				Kind:   OrphanListItem,
				Path:   path,
				Detail: fmt.Sprintf("taskItem outside a task list (parent %s)", parent),
			}
		}
	case KindHeading:
		if b.Level < 1 || b.Level > 6 {
			return &ModelError{
				Kind:   BadHeadingLevel,
				Path:   path,
				Detail: fmt.Sprintf("heading level %d outside 1..6", b.Level),
			}
		}
	}
	for i, child := range b.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		if err := validateBlock(child, b.Kind, childPath); err != nil {
			return err
		}
	}
	return nil
}
