package properties

// StyleAccessor provides typed access to the computed properties.
type StyleAccessor interface {
	GetBottom() DimOrS
	SetBottom(DimOrS)
	GetClear() String
	SetClear(String)
	GetDirection() String
	SetDirection(String)
	GetDisplay() String
	SetDisplay(String)
	GetFloat() String
	SetFloat(String)
	GetLeft() DimOrS
	SetLeft(DimOrS)
	GetRight() DimOrS
	SetRight(DimOrS)
	GetTop() DimOrS
	SetTop(DimOrS)
	GetPosition() String
	SetPosition(String)
	GetUnicodeBidi() String
	SetUnicodeBidi(String)

	GetBorderBottomStyle() String
	SetBorderBottomStyle(String)
	GetBorderBottomWidth() DimOrS
	SetBorderBottomWidth(DimOrS)
	GetMarginBottom() DimOrS
	SetMarginBottom(DimOrS)
	GetPaddingBottom() DimOrS
	SetPaddingBottom(DimOrS)

	GetBorderLeftStyle() String
	SetBorderLeftStyle(String)
	GetBorderLeftWidth() DimOrS
	SetBorderLeftWidth(DimOrS)
	GetMarginLeft() DimOrS
	SetMarginLeft(DimOrS)
	GetPaddingLeft() DimOrS
	SetPaddingLeft(DimOrS)

	GetBorderRightStyle() String
	SetBorderRightStyle(String)
	GetBorderRightWidth() DimOrS
	SetBorderRightWidth(DimOrS)
	GetMarginRight() DimOrS
	SetMarginRight(DimOrS)
	GetPaddingRight() DimOrS
	SetPaddingRight(DimOrS)

	GetBorderTopStyle() String
	SetBorderTopStyle(String)
	GetBorderTopWidth() DimOrS
	SetBorderTopWidth(DimOrS)
	GetMarginTop() DimOrS
	SetMarginTop(DimOrS)
	GetPaddingTop() DimOrS
	SetPaddingTop(DimOrS)

	GetFontSize() DimOrS
	SetFontSize(DimOrS)
	GetLineHeight() DimOrS
	SetLineHeight(DimOrS)
	GetWhiteSpace() String
	SetWhiteSpace(String)
	GetWordSpacing() DimOrS
	SetWordSpacing(DimOrS)

	GetHeight() DimOrS
	SetHeight(DimOrS)
	GetMaxHeight() DimOrS
	SetMaxHeight(DimOrS)
	GetMaxWidth() DimOrS
	SetMaxWidth(DimOrS)
	GetMinHeight() DimOrS
	SetMinHeight(DimOrS)
	GetMinWidth() DimOrS
	SetMinWidth(DimOrS)
	GetWidth() DimOrS
	SetWidth(DimOrS)
}

func (p Properties) GetBottom() DimOrS  { return p[PBottom].(DimOrS) }
func (p Properties) SetBottom(v DimOrS) { p[PBottom] = v }

func (p Properties) GetClear() String  { return p[PClear].(String) }
func (p Properties) SetClear(v String) { p[PClear] = v }

func (p Properties) GetDirection() String  { return p[PDirection].(String) }
func (p Properties) SetDirection(v String) { p[PDirection] = v }

func (p Properties) GetDisplay() String  { return p[PDisplay].(String) }
func (p Properties) SetDisplay(v String) { p[PDisplay] = v }

func (p Properties) GetFloat() String  { return p[PFloat].(String) }
func (p Properties) SetFloat(v String) { p[PFloat] = v }

func (p Properties) GetLeft() DimOrS  { return p[PLeft].(DimOrS) }
func (p Properties) SetLeft(v DimOrS) { p[PLeft] = v }

func (p Properties) GetRight() DimOrS  { return p[PRight].(DimOrS) }
func (p Properties) SetRight(v DimOrS) { p[PRight] = v }

func (p Properties) GetTop() DimOrS  { return p[PTop].(DimOrS) }
func (p Properties) SetTop(v DimOrS) { p[PTop] = v }

func (p Properties) GetPosition() String  { return p[PPosition].(String) }
func (p Properties) SetPosition(v String) { p[PPosition] = v }

func (p Properties) GetUnicodeBidi() String  { return p[PUnicodeBidi].(String) }
func (p Properties) SetUnicodeBidi(v String) { p[PUnicodeBidi] = v }

func (p Properties) GetBorderBottomStyle() String  { return p[PBorderBottomStyle].(String) }
func (p Properties) SetBorderBottomStyle(v String) { p[PBorderBottomStyle] = v }

func (p Properties) GetBorderBottomWidth() DimOrS  { return p[PBorderBottomWidth].(DimOrS) }
func (p Properties) SetBorderBottomWidth(v DimOrS) { p[PBorderBottomWidth] = v }

func (p Properties) GetMarginBottom() DimOrS  { return p[PMarginBottom].(DimOrS) }
func (p Properties) SetMarginBottom(v DimOrS) { p[PMarginBottom] = v }

func (p Properties) GetPaddingBottom() DimOrS  { return p[PPaddingBottom].(DimOrS) }
func (p Properties) SetPaddingBottom(v DimOrS) { p[PPaddingBottom] = v }

func (p Properties) GetBorderLeftStyle() String  { return p[PBorderLeftStyle].(String) }
func (p Properties) SetBorderLeftStyle(v String) { p[PBorderLeftStyle] = v }

func (p Properties) GetBorderLeftWidth() DimOrS  { return p[PBorderLeftWidth].(DimOrS) }
func (p Properties) SetBorderLeftWidth(v DimOrS) { p[PBorderLeftWidth] = v }

func (p Properties) GetMarginLeft() DimOrS  { return p[PMarginLeft].(DimOrS) }
func (p Properties) SetMarginLeft(v DimOrS) { p[PMarginLeft] = v }

func (p Properties) GetPaddingLeft() DimOrS  { return p[PPaddingLeft].(DimOrS) }
func (p Properties) SetPaddingLeft(v DimOrS) { p[PPaddingLeft] = v }

func (p Properties) GetBorderRightStyle() String  { return p[PBorderRightStyle].(String) }
func (p Properties) SetBorderRightStyle(v String) { p[PBorderRightStyle] = v }

func (p Properties) GetBorderRightWidth() DimOrS  { return p[PBorderRightWidth].(DimOrS) }
func (p Properties) SetBorderRightWidth(v DimOrS) { p[PBorderRightWidth] = v }

func (p Properties) GetMarginRight() DimOrS  { return p[PMarginRight].(DimOrS) }
func (p Properties) SetMarginRight(v DimOrS) { p[PMarginRight] = v }

func (p Properties) GetPaddingRight() DimOrS  { return p[PPaddingRight].(DimOrS) }
func (p Properties) SetPaddingRight(v DimOrS) { p[PPaddingRight] = v }

func (p Properties) GetBorderTopStyle() String  { return p[PBorderTopStyle].(String) }
func (p Properties) SetBorderTopStyle(v String) { p[PBorderTopStyle] = v }

func (p Properties) GetBorderTopWidth() DimOrS  { return p[PBorderTopWidth].(DimOrS) }
func (p Properties) SetBorderTopWidth(v DimOrS) { p[PBorderTopWidth] = v }

func (p Properties) GetMarginTop() DimOrS  { return p[PMarginTop].(DimOrS) }
func (p Properties) SetMarginTop(v DimOrS) { p[PMarginTop] = v }

func (p Properties) GetPaddingTop() DimOrS  { return p[PPaddingTop].(DimOrS) }
func (p Properties) SetPaddingTop(v DimOrS) { p[PPaddingTop] = v }

func (p Properties) GetFontSize() DimOrS  { return p[PFontSize].(DimOrS) }
func (p Properties) SetFontSize(v DimOrS) { p[PFontSize] = v }

func (p Properties) GetLineHeight() DimOrS  { return p[PLineHeight].(DimOrS) }
func (p Properties) SetLineHeight(v DimOrS) { p[PLineHeight] = v }

func (p Properties) GetWhiteSpace() String  { return p[PWhiteSpace].(String) }
func (p Properties) SetWhiteSpace(v String) { p[PWhiteSpace] = v }

func (p Properties) GetWordSpacing() DimOrS  { return p[PWordSpacing].(DimOrS) }
func (p Properties) SetWordSpacing(v DimOrS) { p[PWordSpacing] = v }

func (p Properties) GetHeight() DimOrS  { return p[PHeight].(DimOrS) }
func (p Properties) SetHeight(v DimOrS) { p[PHeight] = v }

func (p Properties) GetMaxHeight() DimOrS  { return p[PMaxHeight].(DimOrS) }
func (p Properties) SetMaxHeight(v DimOrS) { p[PMaxHeight] = v }

func (p Properties) GetMaxWidth() DimOrS  { return p[PMaxWidth].(DimOrS) }
func (p Properties) SetMaxWidth(v DimOrS) { p[PMaxWidth] = v }

func (p Properties) GetMinHeight() DimOrS  { return p[PMinHeight].(DimOrS) }
func (p Properties) SetMinHeight(v DimOrS) { p[PMinHeight] = v }

func (p Properties) GetMinWidth() DimOrS  { return p[PMinWidth].(DimOrS) }
func (p Properties) SetMinWidth(v DimOrS) { p[PMinWidth] = v }

func (p Properties) GetWidth() DimOrS  { return p[PWidth].(DimOrS) }
func (p Properties) SetWidth(v DimOrS) { p[PWidth] = v }
