package gpu

// Enumerants used by this module; values match the OpenGL headers.
const (
	NO_ERROR          Enum = 0x0000
	INVALID_ENUM      Enum = 0x0500
	INVALID_VALUE     Enum = 0x0501
	INVALID_OPERATION Enum = 0x0502
	OUT_OF_MEMORY     Enum = 0x0505

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005

	DEPTH_BUFFER_BIT Enum = 0x0100
	COLOR_BUFFER_BIT Enum = 0x4000

	BYTE           Enum = 0x1400
	UNSIGNED_BYTE  Enum = 0x1401
	SHORT          Enum = 0x1402
	UNSIGNED_SHORT Enum = 0x1403
	INT            Enum = 0x1404
	UNSIGNED_INT   Enum = 0x1405
	FLOAT          Enum = 0x1406

	RGBA Enum = 0x1908

	ARRAY_BUFFER                 Enum = 0x8892
	ELEMENT_ARRAY_BUFFER         Enum = 0x8893
	ARRAY_BUFFER_BINDING         Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING Enum = 0x8895
	STATIC_DRAW                  Enum = 0x88E4
	DYNAMIC_DRAW                 Enum = 0x88E8
	VERTEX_ARRAY_BINDING         Enum = 0x85B5
	MAX_VERTEX_ATTRIBS           Enum = 0x8869

	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE_BINDING_2D Enum = 0x8069
	TEXTURE0           Enum = 0x84C0
	ACTIVE_TEXTURE     Enum = 0x84E0
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	NEAREST            Enum = 0x2600
	LINEAR             Enum = 0x2601
	REPEAT             Enum = 0x2901
	CLAMP_TO_EDGE      Enum = 0x812F

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	CURRENT_PROGRAM Enum = 0x8B8D
)
